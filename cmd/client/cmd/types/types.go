package types

type contextKey string

// ClientAppKey carries the initialized client app through the command
// context.
const ClientAppKey contextKey = "clientApp"
