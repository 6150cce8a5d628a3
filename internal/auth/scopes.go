package auth

// Scopes granted to NutrIA clients.
const (
	ScopeProfileRead     = "profile:read"
	ScopeProfileWrite    = "profile:write"
	ScopeMenuRead        = "menu:read"
	ScopeMenuWrite       = "menu:write"
	ScopeRecipesGenerate = "recipes:generate"
)

// AllScopes lists every scope, for issuing development tokens.
var AllScopes = []string{
	ScopeProfileRead,
	ScopeProfileWrite,
	ScopeMenuRead,
	ScopeMenuWrite,
	ScopeRecipesGenerate,
}
