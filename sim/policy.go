package sim

import (
	"fmt"
	"strings"
)

// Policy is a canonical disk-scheduling policy name.
type Policy string

const (
	PolicyFCFS  Policy = "FCFS"
	PolicySSTF  Policy = "SSTF"
	PolicySCAN  Policy = "SCAN"
	PolicyCSCAN Policy = "C-SCAN"
	PolicyLOOK  Policy = "LOOK"
	PolicyCLOOK Policy = "C-LOOK"
)

// AllPolicies lists every policy in presentation order.
// Comparison runs default to this order, which also fixes the best-policy tie-break.
var AllPolicies = []Policy{PolicyFCFS, PolicySSTF, PolicySCAN, PolicyCSCAN, PolicyLOOK, PolicyCLOOK}

// validPolicies maps normalized spellings (upper-case, separators removed) to canonical names.
var validPolicies = map[string]Policy{
	"FCFS":  PolicyFCFS,
	"SSTF":  PolicySSTF,
	"SCAN":  PolicySCAN,
	"CSCAN": PolicyCSCAN,
	"LOOK":  PolicyLOOK,
	"CLOOK": PolicyCLOOK,
}

func normalizePolicyName(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToUpper(r.Replace(strings.TrimSpace(name)))
}

// IsValidPolicy returns true if name spells one of the six policies.
// Matching ignores case and '-', '_' or ' ' separators ("c-scan", "CSCAN", "c_scan").
func IsValidPolicy(name string) bool {
	_, ok := validPolicies[normalizePolicyName(name)]
	return ok
}

// ParsePolicy resolves a user-supplied name to its canonical Policy.
// Unrecognized names return an *InvalidInputError on field "policy".
func ParsePolicy(name string) (Policy, error) {
	p, ok := validPolicies[normalizePolicyName(name)]
	if !ok {
		return "", invalidInput("policy", fmt.Sprintf("%q", name), "valid policies: %s", PolicyNames())
	}
	return p, nil
}

// ParsePolicies resolves a list of names, preserving order.
// Empty lists and repeated policies are rejected on field "policies".
func ParsePolicies(names []string) ([]Policy, error) {
	if len(names) == 0 {
		return nil, invalidInput("policies", "[]", "at least one policy is required")
	}
	seen := make(map[Policy]bool, len(names))
	out := make([]Policy, 0, len(names))
	for _, name := range names {
		p, err := ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		if seen[p] {
			return nil, invalidInput("policies", p, "policy listed more than once")
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

// PolicyNames returns the canonical names joined for help and error text.
func PolicyNames() string {
	names := make([]string, len(AllPolicies))
	for i, p := range AllPolicies {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
