package utils // package utils provides the access token service and password hashing

import (
    "errors" // sentinel errors returned by Verify
    "time"   // expirations and issue times

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Errors returned by the token service.  Handlers and middleware compare
// against these with errors.Is.
var (
    ErrMissingSecret    = errors.New("token secret is empty")
    ErrInvalidSignature = errors.New("token signature is invalid")
    ErrTokenExpired     = errors.New("token is expired")
    ErrMalformedToken   = errors.New("token is malformed")
)

// DefaultAccessTTL is the lifetime of an access token when none is configured.
const DefaultAccessTTL = time.Hour

// Identity is the payload carried by an access token.
type Identity struct {
    Email string `json:"email"`
    Role  string `json:"role"`
}

// AccessToken represents a signed JWT access token along with its expiry.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// claims is the JWT body: the identity plus the registered exp/iat claims.
type claims struct {
    Email string `json:"email"`
    Role  string `json:"role"`
    jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.  It holds no
// mutable state after construction and is safe for concurrent use.
type TokenService struct {
    secret []byte
    ttl    time.Duration
    now    func() time.Time
}

// NewTokenService builds a TokenService.  It refuses an empty secret so that
// a misconfigured server can never sign tokens with a blank key.  A
// non-positive ttl falls back to DefaultAccessTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
    if secret == "" {
        return nil, ErrMissingSecret
    }
    if ttl <= 0 {
        ttl = DefaultAccessTTL
    }
    return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of s that reads the current time from now.  It
// exists for tests that need to step past a token's expiry.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
    cp := *s
    cp.now = now
    return &cp
}

// Issue signs a token for the identity that expires ttl from now.
func (s *TokenService) Issue(id Identity) (AccessToken, error) {
    issued := s.now().UTC()
    exp := issued.Add(s.ttl)
    c := claims{
        Email: id.Email,
        Role:  id.Role,
        RegisteredClaims: jwt.RegisteredClaims{
            ExpiresAt: jwt.NewNumericDate(exp),
            IssuedAt:  jwt.NewNumericDate(issued),
        },
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// Verify checks the token's signature and expiry and returns the identity
// it carries.  Tokens signed with anything other than HMAC are rejected as
// malformed.
func (s *TokenService) Verify(raw string) (Identity, error) {
    var c claims
    _, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrMalformedToken
        }
        return s.secret, nil
    },
        jwt.WithTimeFunc(s.now),
        jwt.WithExpirationRequired(),
    )
    switch {
    case err == nil:
        return Identity{Email: c.Email, Role: c.Role}, nil
    case errors.Is(err, jwt.ErrTokenSignatureInvalid):
        return Identity{}, ErrInvalidSignature
    case errors.Is(err, jwt.ErrTokenExpired):
        return Identity{}, ErrTokenExpired
    default:
        return Identity{}, ErrMalformedToken
    }
}
