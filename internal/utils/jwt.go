package utils // package utils provides helper functions for token creation and hashing

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by ParseUserID for any token that fails
// verification: bad signature, malformed string, missing subject, or expiry
// in the past.  Callers map it to HTTP 401.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT along with its expiry.  The Token
// field contains the serialized JWT string presented in the Authorization
// header (and mirrored in the HttpOnly cookie set at login).
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID and a TTL in hours, and returns the signed
// token with its expiration time.  Claims carry the subject (sub),
// expiration (exp) and issued at (iat); there is no server-side session
// state, so the token is the whole session.
func NewAccessToken(secret string, userID uint64, ttlHours int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlHours) * time.Hour)
    claims := jwt.MapClaims{
        "sub": userID,
        "exp": exp.Unix(),
        "iat": now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseUserID verifies a raw token against the secret and returns the user
// ID from the subject claim.  Expired, tampered or malformed tokens all
// yield ErrInvalidToken; the jwt library checks exp automatically during
// Parse.
func ParseUserID(secret, raw string) (uint64, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Type assert the signing method to HMAC; reject others.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return 0, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return 0, ErrInvalidToken
    }
    // JWT numeric values decode as float64.
    sub, ok := claims["sub"].(float64)
    if !ok || sub < 0 {
        return 0, ErrInvalidToken
    }
    return uint64(sub), nil
}
