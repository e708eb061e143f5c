package auth

import (
	"context"
	"testing"

	"google.golang.org/grpc"

	"squidstatControl/internal/testutil"
	"squidstatControl/repository"
)

func TestRequireKindAndHelpers(t *testing.T) {
	ctx := WithPrincipal(context.Background(), &Principal{Name: "op1", Kind: "operator"})
	if _, err := RequireOperatorOrAdmin(ctx); err != nil {
		t.Fatalf("RequireOperatorOrAdmin: %v", err)
	}
	if _, err := RequireKind(ctx, "admin"); err == nil {
		t.Fatalf("expected admin rejection for operator")
	}
	// Unknown kinds are rejected outright.
	ctx = WithPrincipal(context.Background(), &Principal{Name: "x", Kind: "guest"})
	if _, err := RequireOperatorOrAdmin(ctx); err == nil {
		t.Fatalf("expected rejection for unknown kind")
	}
}

func TestRequireAdmin_WithDBRoleCheck(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authadmin")
	users := repository.NewUserRepository(d)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := users.Create(ctx, "alice"); err != nil {
		t.Fatalf("create alice: %v", err)
	}
	// Spoofed principal kind=admin but DB role is operator
	pctx := WithPrincipal(context.Background(), &Principal{Name: "alice", Kind: "admin"})
	if _, err := RequireAdmin(pctx, users); err == nil {
		t.Fatalf("expected PermissionDenied for non-admin role")
	}

	// Make real admin
	if err := users.UpdateRoleByUsername(ctx, "alice", "admin"); err != nil {
		t.Fatalf("update role: %v", err)
	}
	if _, err := RequireAdmin(pctx, users); err != nil {
		t.Fatalf("RequireAdmin real admin: %v", err)
	}
}

func TestUnaryAuthInterceptor(t *testing.T) {
	secret := "s3cr3t"
	// allowlisted method should bypass auth
	interceptor := NewUnaryAuthInterceptor(secret, "/health")

	// 1) Allowlisted path: no header -> handler executes, no principal
	hCalled := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/health"}, func(ctx context.Context, req any) (any, error) {
		hCalled = true
		if p, ok := FromContext(ctx); ok && p != nil {
			t.Fatalf("expected no principal on allowlisted path")
		}
		return 123, nil
	})
	if err != nil || !hCalled {
		t.Fatalf("allowlisted handler err=%v called=%v", err, hCalled)
	}

	// 2) Authenticated path: with token -> principal injected
	tok := testutil.GenerateJWTHS256(t, secret, "bob", "operator")
	ctx := testutil.CtxWithBearer(context.Background(), tok)
	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		p, ok := FromContext(ctx)
		if !ok || p == nil || p.Name != "bob" || p.Kind != "operator" {
			t.Fatalf("principal not injected: %+v ok=%v", p, ok)
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor auth path: %v", err)
	}

	// 3) Missing token -> Unauthenticated
	if _, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		t.Fatalf("handler must not run without credentials")
		return nil, nil
	}); err == nil {
		t.Fatalf("expected error without credentials")
	}
}
