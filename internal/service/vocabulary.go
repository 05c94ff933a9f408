package service

import (
	"sort"

	"github.com/yourusername/cricket-predictor/internal/ml"
)

// Vocabulary is the pair of ordered team and city sets exposed to selection
// inputs. It is derived from the training data or supplied as a curated
// override; either way it is immutable once loaded.
type Vocabulary struct {
	Teams  []string `json:"teams"`
	Cities []string `json:"cities"`
}

// LoadVocabulary reads the team and city artifacts from disk.
func LoadVocabulary(teamPath, cityPath string) (*Vocabulary, error) {
	teams, err := ml.LoadVocabulary(teamPath)
	if err != nil {
		return nil, err
	}
	cities, err := ml.LoadVocabulary(cityPath)
	if err != nil {
		return nil, err
	}

	sort.Strings(teams)
	sort.Strings(cities)
	return &Vocabulary{Teams: teams, Cities: cities}, nil
}

// HasTeam reports whether the team is in the curated set.
func (v *Vocabulary) HasTeam(team string) bool {
	return contains(v.Teams, team)
}

// HasCity reports whether the city is in the curated set.
func (v *Vocabulary) HasCity(city string) bool {
	return contains(v.Cities, city)
}

func contains(values []string, s string) bool {
	i := sort.SearchStrings(values, s)
	return i < len(values) && values[i] == s
}
