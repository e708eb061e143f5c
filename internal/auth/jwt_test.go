package auth

import (
    "context"
    "testing"

    "squidstatControl/internal/testutil"
)

const testSecret = "test-secret"

func TestParseFromMD_ValidBearer(t *testing.T) {
    tok := testutil.GenerateJWTHS256(t, testSecret, "alice", "operator")
    ctx := testutil.CtxWithBearer(context.Background(), tok)
    p, err := ParseFromMD(ctx, testSecret)
    if err != nil {
        t.Fatalf("ParseFromMD: %v", err)
    }
    if p.Name != "alice" || p.Kind != "operator" {
        t.Fatalf("principal mismatch: %+v", p)
    }
}

func TestParseFromMD_MissingHeader(t *testing.T) {
    _, err := ParseFromMD(context.Background(), testSecret)
    if err == nil {
        t.Fatalf("expected error for missing metadata")
    }
}

func TestParseJWT_WrongSecret(t *testing.T) {
    tok := testutil.GenerateJWTHS256(t, testSecret, "bob", "operator")
    if _, err := parseJWT(tok, "wrong"); err == nil {
        t.Fatalf("expected error for wrong secret")
    }
}

func TestParseJWT_ClaimsValidation(t *testing.T) {
    // Missing name/kind -> invalid
    tok := testutil.GenerateJWTHS256(t, testSecret, "", "")
    if _, err := parseJWT(tok, testSecret); err == nil {
        t.Fatalf("expected invalid claims error")
    }
}
