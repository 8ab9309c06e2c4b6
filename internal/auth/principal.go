package auth

// PublicPrincipal is the result of the public guard: request state, no credential.
type PublicPrincipal struct {
	state *State
}

// State returns the request state.
func (p *PublicPrincipal) State() *State { return p.state }

// UserPrincipal holds a resolved public principal and verified access claims.
type UserPrincipal struct {
	Public *PublicPrincipal
	claims *AccessClaims
}

// State returns the request state.
func (p *UserPrincipal) State() *State { return p.Public.State() }

// Claims returns the verified access token claims.
func (p *UserPrincipal) Claims() *AccessClaims { return p.claims }

// AdminPrincipal is a user principal whose verified claims carry the admin flag.
type AdminPrincipal struct {
	User *UserPrincipal
}

// State returns the request state.
func (p *AdminPrincipal) State() *State { return p.User.State() }

// Claims returns the verified access token claims of the underlying user.
func (p *AdminPrincipal) Claims() *AccessClaims { return p.User.Claims() }
