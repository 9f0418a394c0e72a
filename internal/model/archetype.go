package model

// TraitRange is the ideal band for one trait percentage
type TraitRange struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// Contains reports whether the value falls inside the band, inclusive
func (r TraitRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DistanceTo returns how far the value lies outside the band, 0 inside
func (r TraitRange) DistanceTo(v float64) float64 {
	if v < r.Min {
		return r.Min - v
	}
	if v > r.Max {
		return v - r.Max
	}
	return 0
}

// Archetype is one of the six mythological result characters
type Archetype struct {
	ID        string                    `json:"id" bson:"_id"`
	Name      Text                      `json:"name" bson:"name"`
	Title     Text                      `json:"title" bson:"title"`
	Summary   Text                      `json:"summary" bson:"summary"`
	Mythology Text                      `json:"mythology" bson:"mythology"`
	Ranges    map[TraitLabel]TraitRange `json:"ranges" bson:"ranges"`
}

// ArchetypeScore is one ranked entry in a match result
type ArchetypeScore struct {
	ArchetypeID string  `json:"archetypeId" bson:"archetypeId"`
	Score       float64 `json:"score" bson:"score"`
}

// MatchResult is the full ranked outcome of archetype matching
type MatchResult struct {
	Ranked []ArchetypeScore `json:"ranked" bson:"ranked"`
	BestID string           `json:"bestId" bson:"bestId"`
}
