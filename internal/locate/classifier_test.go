package locate

import "testing"

var testCities = []string{"Paris", "Lyon", "Marseille", "Aix-en-Provence"}

func newTestClassifier() *Classifier {
	return NewClassifier(testCities, nil, nil)
}

func TestDetectCity_WholeWordFirstMatch(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		raw      string
		fallback string
		want     string
	}{
		{"Murs commerciaux à Lyon, quartier Presqu'île", "Paris", "Lyon"},
		{"local situé à MARSEILLE 6ème", "", "Marseille"},
		{"emplacement en Aix-en-Provence", "", "Aix-en-Provence"},
		// List order wins, not text order
		{"entre Lyon et Paris", "", "Paris"},
		// No whole-word match: "Parisien" must not count as "Paris"
		{"style parisien, ville inconnue", "Bordeaux", "Bordeaux"},
		{"aucune ville ici", "Toulouse", "Toulouse"},
		{"aucune ville ici", "", ""},
	}

	for _, tt := range tests {
		if got := c.DetectCity(tt.raw, tt.fallback); got != tt.want {
			t.Errorf("DetectCity(%q, %q) = %q, want %q", tt.raw, tt.fallback, got, tt.want)
		}
	}
}

func TestScore_PrimeAxis(t *testing.T) {
	c := newTestClassifier()

	got := c.Score("Paris", "Boutique avenue montaigne, surface 120 m2")
	if got != TierPrime {
		t.Errorf("Expected tier %q for prime axis, got %q", TierPrime, got)
	}
}

func TestScore_AxisOfAnotherCityDoesNotCount(t *testing.T) {
	c := newTestClassifier()

	// Avenue Montaigne is a Paris axis; in a Lyon listing it is noise.
	got := c.Score("Lyon", "référence à l'avenue Montaigne dans le descriptif")
	if got != TierStandard {
		t.Errorf("Expected tier %q, got %q", TierStandard, got)
	}
}

func TestScore_GenericKeywordFallback(t *testing.T) {
	c := newTestClassifier()

	tests := []string{
		"local en plein centre-ville",
		"emplacement d'angle très visible",
		"rue piétonne à fort passage",
		"FORT FLUX toute la journée",
	}
	for _, raw := range tests {
		if got := c.Score("Marseille", raw); got != TierNear {
			t.Errorf("Score(Marseille, %q) = %q, want %q", raw, got, TierNear)
		}
	}
}

func TestScore_DefaultTier(t *testing.T) {
	c := newTestClassifier()

	got := c.Score("Lyon", "local commercial en périphérie")
	if got != TierStandard {
		t.Errorf("Expected tier %q, got %q", TierStandard, got)
	}
}

func TestScore_UndetectedCityIsUnscored(t *testing.T) {
	c := newTestClassifier()

	// Even with a prime-keyword hit, no city means no score — the
	// unscored state is distinct from tier "2".
	got := c.Score("", "superbe local en centre-ville")
	if got != TierUnscored {
		t.Errorf("Expected unscored tier, got %q", got)
	}
}

func TestScore_CustomAxesAndKeywords(t *testing.T) {
	axes := map[string][]string{"Trouville": {"Rue des Bains"}}
	c := NewClassifier([]string{"Trouville"}, axes, []string{"front de mer"})

	if got := c.Score("Trouville", "boutique rue des bains"); got != TierPrime {
		t.Errorf("Expected custom axis to score %q, got %q", TierPrime, got)
	}
	if got := c.Score("Trouville", "local front de mer"); got != TierNear {
		t.Errorf("Expected custom keyword to score %q, got %q", TierNear, got)
	}
	if got := c.Score("Trouville", "zone artisanale"); got != TierStandard {
		t.Errorf("Expected default tier, got %q", got)
	}
}

func TestNewClassifier_DefaultsToAxisTableCities(t *testing.T) {
	c := NewClassifier(nil, nil, nil)

	if got := c.DetectCity("murs à Chartres, rue commerçante", ""); got != "Chartres" {
		t.Errorf("Expected built-in city list to detect Chartres, got %q", got)
	}
}

func TestTierRank_TotalOrder(t *testing.T) {
	order := []Tier{TierPrime, TierNear, TierStandard, TierUnscored}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Errorf("Expected %q to rank before %q", order[i-1], order[i])
		}
	}
}
