package mocks

import (
	"strings"

	"github.com/you/attendsvc/domain"
)

// MockCasbinEnforcer implements the CasbinEnforcer interface for testing
type MockCasbinEnforcer struct {
	AddPolicyFunc    func(params ...interface{}) (bool, error)
	RemovePolicyFunc func(params ...interface{}) (bool, error)
	EnforceFunc      func(rvals ...interface{}) (bool, error)
	GetPolicyFunc    func() ([][]string, error)
	SavePolicyFunc   func() error
	LoadPolicyFunc   func() error
	policies         [][]string
}

// Compile-time interface compliance verification
var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

// NewMockCasbinEnforcer creates a new MockCasbinEnforcer with default behaviors
func NewMockCasbinEnforcer() *MockCasbinEnforcer {
	return &MockCasbinEnforcer{
		policies: [][]string{
			{"role_admin", "/admin/*", "GET|POST|PUT|DELETE"},
			{"role_admin", "/party/*", "GET|POST|PUT|DELETE"},
			{"role_user", "/attendance", "GET"},
			{"role_user", "/attendance/*", "GET|POST"},
			{"role_user", "/party", "GET"},
		},
	}
}

// AddPolicy adds a new policy rule
func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(params...)
	}
	
	// Default behavior: add to internal policies list
	if len(params) >= 3 {
		policy := make([]string, len(params))
		for i, param := range params {
			if str, ok := param.(string); ok {
				policy[i] = str
			}
		}
		m.policies = append(m.policies, policy)
		return true, nil
	}
	return false, nil
}

// RemovePolicy removes a policy rule
func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(params...)
	}
	
	// Default behavior: remove from internal policies list
	if len(params) >= 3 {
		targetPolicy := make([]string, len(params))
		for i, param := range params {
			if str, ok := param.(string); ok {
				targetPolicy[i] = str
			}
		}
		
		for i, policy := range m.policies {
			if len(policy) == len(targetPolicy) {
				match := true
				for j, val := range policy {
					if val != targetPolicy[j] {
						match = false
						break
					}
				}
				if match {
					m.policies = append(m.policies[:i], m.policies[i+1:]...)
					return true, nil
				}
			}
		}
	}
	return false, nil
}

// Enforce checks if a request should be allowed
func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(rvals...)
	}
	
	// Default behavior: simple role-based authorization
	if len(rvals) >= 3 {
		role, ok1 := rvals[0].(string)
		resource, ok2 := rvals[1].(string)
		action, ok3 := rvals[2].(string)
		
		if ok1 && ok2 && ok3 {
			// Admin can access everything
			if role == "role_admin" {
				return true, nil
			}

			// Check against stored policies
			for _, policy := range m.policies {
				if len(policy) >= 3 && policy[0] == role {
					if matchResource(policy[1], resource) && matchAction(policy[2], action) {
						return true, nil
					}
				}
			}
		}
	}
	
	return false, nil
}

// matchResource approximates keyMatch2: exact match, or a trailing /*
// wildcard covering everything under the prefix.
func matchResource(pattern, resource string) bool {
	if pattern == resource || pattern == "/*" {
		return true
	}
	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*")
		return strings.HasPrefix(resource, prefix+"/")
	}
	return false
}

// matchAction approximates regexMatch over pipe-separated verbs.
func matchAction(pattern, action string) bool {
	if pattern == "*" || pattern == action {
		return true
	}
	for _, verb := range strings.Split(strings.Trim(pattern, "()"), "|") {
		if verb == action {
			return true
		}
	}
	return false
}

// GetPolicy returns all policies
func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) {
	if m.GetPolicyFunc != nil {
		return m.GetPolicyFunc()
	}
	// Return copy of internal policies
	result := make([][]string, len(m.policies))
	for i, policy := range m.policies {
		result[i] = make([]string, len(policy))
		copy(result[i], policy)
	}
	return result, nil
}

// SavePolicy saves all policies
func (m *MockCasbinEnforcer) SavePolicy() error {
	if m.SavePolicyFunc != nil {
		return m.SavePolicyFunc()
	}
	// Default behavior: success
	return nil
}

// LoadPolicy loads all policies
func (m *MockCasbinEnforcer) LoadPolicy() error {
	if m.LoadPolicyFunc != nil {
		return m.LoadPolicyFunc()
	}
	// Default behavior: success
	return nil
}

// SetPolicies sets the internal policies (test helper)
func (m *MockCasbinEnforcer) SetPolicies(policies [][]string) {
	m.policies = make([][]string, len(policies))
	for i, policy := range policies {
		m.policies[i] = make([]string, len(policy))
		copy(m.policies[i], policy)
	}
}