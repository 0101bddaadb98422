package services

import (
	"math"
	"strings"
	"time"

	"trekhub/internal/domain"
	"trekhub/internal/utils"
)

const (
	notAvailable     = "N/A"
	noneReported     = "None reported"
	noneText         = "None"
	toBeCollected    = "To be collected"
	standardLodging  = "Standard accommodation"
	defaultSource    = "Website"
	minSafeAge       = 18
	maxSafeAge       = 60
	daysPerYear      = 365.25
	largeGroupCutoff = 4
)

// experienceRules is evaluated top to bottom; the first rule with a
// matching keyword wins.
var experienceRules = []struct {
	keywords []string
	level    string
}{
	{[]string{"beginner", "first"}, domain.ExperienceBeginner},
	{[]string{"intermediate", "some"}, domain.ExperienceIntermediate},
	{[]string{"advanced", "expert"}, domain.ExperienceAdvanced},
}

// ClassifyExperience maps free-text trekking experience to a level.
// Text that matches no rule is passed through unchanged.
func ClassifyExperience(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.ExperienceNotSpecified
	}
	lower := strings.ToLower(text)
	for _, rule := range experienceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.level
			}
		}
	}
	return text
}

var noneMarkers = map[string]struct{}{
	"none":          {},
	"none reported": {},
	"n/a":           {},
	"nil":           {},
}

// HasHealthNote reports whether a health field carries a real entry.
func HasHealthNote(raw string) bool {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return false
	}
	_, none := noneMarkers[text]
	return !none
}

func normalizeHealth(raw string) string {
	if !HasHealthNote(raw) {
		return noneReported
	}
	return strings.TrimSpace(raw)
}

// SeasonForMonth is the fixed Himalayan calendar used for planning.
func SeasonForMonth(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return domain.SeasonSpring
	case m >= time.June && m <= time.August:
		return domain.SeasonMonsoon
	case m >= time.September && m <= time.November:
		return domain.SeasonPostMonsoon
	default:
		return domain.SeasonWinter
	}
}

// SeasonOf classifies a stored date string; anything unparseable is Unknown.
func SeasonOf(date string) string {
	t, err := utils.ParseFlexible(date)
	if err != nil {
		return domain.SeasonUnknown
	}
	return SeasonForMonth(t.Month())
}

// RiskInput holds the signals risk triage looks at.
type RiskInput struct {
	MedicalConditions string
	Age               int
	ExperienceLevel   string
}

// riskFactors each escalate the level by one step, in order.
var riskFactors = []struct {
	name    string
	applies func(RiskInput) bool
}{
	{"medical", func(in RiskInput) bool { return HasHealthNote(in.MedicalConditions) }},
	{"age", func(in RiskInput) bool { return in.Age > 0 && (in.Age < minSafeAge || in.Age > maxSafeAge) }},
	{"beginner", func(in RiskInput) bool { return in.ExperienceLevel == domain.ExperienceBeginner }},
}

// AssessRisk starts at Low and escalates once per present factor, capped at High.
func AssessRisk(in RiskInput) domain.RiskLevel {
	level := domain.RiskLow
	for _, f := range riskFactors {
		if f.applies(in) {
			level = level.Escalate()
		}
	}
	return level
}

// GroupSizeFor buckets a participant count.
func GroupSizeFor(participants int) string {
	switch {
	case participants <= 1:
		return domain.GroupSolo
	case participants <= largeGroupCutoff:
		return domain.GroupSmall
	default:
		return domain.GroupLarge
	}
}

// AgeFrom derives whole years between dob and now; future or unparseable
// dates give 0.
func AgeFrom(dob string, now time.Time) int {
	t, err := utils.ParseFlexible(dob)
	if err != nil {
		return 0
	}
	days := now.Sub(t).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Floor(days / daysPerYear))
}

// AmountPerPerson splits the total evenly, rounded to the rupee.
func AmountPerPerson(total float64, participants int) float64 {
	if participants <= 0 {
		return total
	}
	return math.Round(total / float64(participants))
}
