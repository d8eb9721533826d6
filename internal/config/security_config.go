package config

type SecurityLevel int

const (
	SecurityPublic  SecurityLevel = iota // No authentication
	SecurityRefresh                      // Refresh token required
	SecurityAccess                       // Access token required
	SecurityAdmin                        // Access token of an admin user required
)

// EndpointSecurityConfig maps "METHOD /route/template" to the required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth - Public
	"POST /api/auth/register":               SecurityPublic,
	"POST /api/auth/login":                  SecurityPublic,
	"POST /api/auth/password-reset":         SecurityPublic,
	"POST /api/auth/password-reset/confirm": SecurityPublic,

	// Companies are listed on the registration form
	"GET /api/companies": SecurityPublic,

	// Auth - Refresh Protected
	"POST /api/auth/refresh": SecurityRefresh,

	// Users
	"GET /api/users/me":   SecurityAccess,
	"PATCH /api/users/me": SecurityAccess,

	// Companies
	"GET /api/companies/{id}":         SecurityAccess,
	"POST /api/companies":             SecurityAdmin,
	"PATCH /api/companies/{id}":       SecurityAdmin,
	"GET /api/companies/{id}/members": SecurityAdmin,

	// Support requests
	"POST /api/support-requests":               SecurityAccess,
	"GET /api/support-requests":                SecurityAccess,
	"GET /api/support-requests/mine":           SecurityAccess,
	"GET /api/support-requests/{id}":           SecurityAccess,
	"GET /api/support-requests/{id}/donations": SecurityAccess,

	// Donations
	"POST /api/donations":     SecurityAccess,
	"GET /api/donations/mine": SecurityAccess,

	// Stats
	"GET /api/stats":            SecurityAccess,
	"GET /api/stats/companies":  SecurityAccess,
	"GET /api/stats/top-donors": SecurityAccess,

	// Notifications
	"GET /api/notifications":            SecurityAccess,
	"POST /api/notifications/{id}/read": SecurityAccess,

	// Admin
	"GET /api/admin/users":          SecurityAdmin,
	"PUT /api/admin/users/{id}/pto": SecurityAdmin,
	"DELETE /api/admin/users/{id}":  SecurityAdmin,
}

// GetSecurityLevel returns the security level for a given route
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method+" "+pathTemplate]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAdmin
}
