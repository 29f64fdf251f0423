package common

// TokenCookieName is the HTTP cookie that carries the session token.
// The Authorization "Bearer" header is accepted as a fallback.
const TokenCookieName = "token"
