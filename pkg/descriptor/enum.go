package descriptor

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var nonAlphanumericRun = regexp.MustCompile(`[^\p{L}\p{Nd}]+`)

// EmptyCaseName is used when a raw value has no letters or digits
const EmptyCaseName = "EMPTY"

// SanitizeCaseName derives a constant-style identifier from a raw enum value.
// Runs of characters other than letters and decimal digits collapse to "_",
// the result is upper-cased and a leading digit is prefixed with "_".
func SanitizeCaseName(raw string) string {
	name := nonAlphanumericRun.ReplaceAllString(raw, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return EmptyCaseName
	}

	name = strings.ToUpper(name)
	if first, _ := utf8.DecodeRuneInString(name); !unicode.IsLetter(first) {
		name = "_" + name
	}
	return name
}

// CollisionPolicy decides what happens when two cases sanitize to one name
type CollisionPolicy string

const (
	// CollisionReject fails the enum with a CaseNameCollisionError
	CollisionReject CollisionPolicy = "error"
	// CollisionSuffix appends _2, _3, ... to later cases
	CollisionSuffix CollisionPolicy = "suffix"
)

// ParseCollisionPolicy converts a configuration string to a CollisionPolicy
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case CollisionReject, "":
		return CollisionReject, nil
	case CollisionSuffix:
		return CollisionSuffix, nil
	default:
		return "", fmt.Errorf("unknown enum collision policy: %q", s)
	}
}

// EnumBuilder normalizes raw enumeration facets into an EnumDescriptor
type EnumBuilder struct {
	Collisions CollisionPolicy
}

// BuildEnum builds an enum rejecting case-name collisions
func BuildEnum(namespace, name string, raw []RawEnumCase, doc *string) (EnumDescriptor, error) {
	return EnumBuilder{Collisions: CollisionReject}.Build(namespace, name, raw, doc)
}

// Build classifies every case value, validates the set as a whole and then
// assembles the descriptor in input order. No partial result is returned on error.
func (b EnumBuilder) Build(namespace, name string, raw []RawEnumCase, doc *string) (EnumDescriptor, error) {
	classifications := make([]ValueClassification, len(raw))
	values := make([]any, len(raw))

	for i, c := range raw {
		kind, value, ok := classifyValue(c.Value)
		if !ok {
			return EnumDescriptor{}, &InvalidEnumValueError{Enum: name, Index: i, Value: c.Value}
		}
		classifications[i] = ValueClassification{Index: i, RawValue: c.RawValue(), Kind: kind}
		values[i] = value
	}

	backing, err := inferBacking(name, classifications)
	if err != nil {
		return EnumDescriptor{}, err
	}

	names, err := b.caseNames(name, raw)
	if err != nil {
		return EnumDescriptor{}, err
	}

	cases := make([]EnumCase, len(raw))
	for i, c := range raw {
		cases[i] = EnumCase{
			Name:  names[i],
			Value: values[i],
			Doc:   strings.TrimSpace(c.Doc),
		}
	}

	return EnumDescriptor{
		Namespace: namespace,
		Name:      name,
		Backing:   backing,
		Cases:     cases,
		Doc:       doc,
	}, nil
}

func inferBacking(enum string, classifications []ValueClassification) (BackingKind, error) {
	present := make(map[BackingKind]bool, 3)
	for _, c := range classifications {
		present[c.Kind] = true
	}

	switch {
	case present[BackingString] && present[BackingInteger]:
		return "", &MixedEnumBackingError{Enum: enum, Classifications: classifications}
	case present[BackingUnit] && (present[BackingString] || present[BackingInteger]):
		// backed enums need a value on every case
		return "", &MixedEnumBackingError{Enum: enum, Classifications: classifications}
	case present[BackingInteger]:
		return BackingInteger, nil
	case present[BackingString]:
		return BackingString, nil
	default:
		return BackingUnit, nil
	}
}

func (b EnumBuilder) caseNames(enum string, raw []RawEnumCase) ([]string, error) {
	names := make([]string, len(raw))
	firstIndex := make(map[string]int, len(raw))
	taken := make(map[string]bool, len(raw))

	for i, c := range raw {
		candidate := SanitizeCaseName(c.RawValue())
		if !taken[candidate] {
			taken[candidate] = true
			firstIndex[candidate] = i
			names[i] = candidate
			continue
		}

		if b.Collisions != CollisionSuffix {
			return nil, &CaseNameCollisionError{
				Enum:      enum,
				CaseName:  candidate,
				RawValues: []string{raw[firstIndex[candidate]].RawValue(), c.RawValue()},
			}
		}

		for n := 2; ; n++ {
			suffixed := fmt.Sprintf("%s_%d", candidate, n)
			if !taken[suffixed] {
				taken[suffixed] = true
				names[i] = suffixed
				break
			}
		}
	}

	return names, nil
}

// classifyValue maps a raw value to its backing kind and normalized value
func classifyValue(v any) (BackingKind, any, bool) {
	switch t := v.(type) {
	case nil:
		return BackingUnit, nil, true
	case string:
		if t == "" {
			return BackingUnit, nil, true
		}
		return BackingString, t, true
	case int:
		return BackingInteger, int64(t), true
	case int8:
		return BackingInteger, int64(t), true
	case int16:
		return BackingInteger, int64(t), true
	case int32:
		return BackingInteger, int64(t), true
	case int64:
		return BackingInteger, t, true
	case uint:
		return uintValue(uint64(t))
	case uint8:
		return BackingInteger, int64(t), true
	case uint16:
		return BackingInteger, int64(t), true
	case uint32:
		return BackingInteger, int64(t), true
	case uint64:
		return uintValue(t)
	default:
		return "", nil, false
	}
}

func uintValue(u uint64) (BackingKind, any, bool) {
	if u > math.MaxInt64 {
		return "", nil, false
	}
	return BackingInteger, int64(u), true
}
