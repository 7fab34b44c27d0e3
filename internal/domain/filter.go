package domain

import "fmt"

// PrimaryFilter selects words by review state
type PrimaryFilter string

const (
	PrimaryAll        PrimaryFilter = "all"
	PrimaryReview     PrimaryFilter = "review"
	PrimaryUnfamiliar PrimaryFilter = "unfamiliar"
)

// SecondaryFilter selects words by topic
type SecondaryFilter string

const (
	SecondaryAll   SecondaryFilter = "all"
	SecondaryTech  SecondaryFilter = "tech"
	SecondaryDaily SecondaryFilter = "daily"
)

// ParsePrimaryFilter validates a raw primary filter value
func ParsePrimaryFilter(s string) (PrimaryFilter, error) {
	switch PrimaryFilter(s) {
	case PrimaryAll, PrimaryReview, PrimaryUnfamiliar:
		return PrimaryFilter(s), nil
	}
	return "", fmt.Errorf("unknown primary filter %q", s)
}

// ParseSecondaryFilter validates a raw secondary filter value
func ParseSecondaryFilter(s string) (SecondaryFilter, error) {
	switch SecondaryFilter(s) {
	case SecondaryAll, SecondaryTech, SecondaryDaily:
		return SecondaryFilter(s), nil
	}
	return "", fmt.Errorf("unknown secondary filter %q", s)
}
