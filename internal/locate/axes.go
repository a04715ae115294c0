package locate

// PrimeAxes maps each supported city to its prime commercial axes:
// the streets with the highest retail footfall, the strongest signal a
// listing can carry. This is reference data, not logic — adding a city
// is a table entry, never a code change. Configs may override it.
var PrimeAxes = map[string][]string{
	"Paris":            {"Champs-Élysées", "Rue de Rivoli", "Boulevard Haussmann", "Rue Saint-Honoré", "Avenue Montaigne"},
	"Lyon":             {"Rue de la République", "Rue Victor Hugo", "Rue Mercière"},
	"Marseille":        {"Rue Saint-Ferréol", "La Canebière"},
	"Bordeaux":         {"Rue Sainte-Catherine", "Cours de l'Intendance"},
	"Toulouse":         {"Rue d'Alsace-Lorraine", "Rue Saint-Rome"},
	"Lille":            {"Rue de Béthune", "Rue Neuve"},
	"Nice":             {"Avenue Jean Médecin", "Rue Masséna"},
	"Nantes":           {"Rue Crébillon", "Rue du Calvaire"},
	"Montpellier":      {"Rue de la Loge", "Comédie"},
	"Rennes":           {"Rue Le Bastard", "Rue d'Antrain"},
	"Strasbourg":       {"Grand'Rue", "Rue des Grandes Arcades"},
	"Grenoble":         {"Rue Félix Poulat", "Rue de Bonne"},
	"Dijon":            {"Rue de la Liberté"},
	"Angers":           {"Rue Lenepveu"},
	"Reims":            {"Rue de Vesle"},
	"Tours":            {"Rue Nationale"},
	"Clermont-Ferrand": {"Rue du 11 Novembre"},
	"Saint-Étienne":    {"Rue des Martyrs de Vingré"},
	"Nîmes":            {"Rue de l'Aspic"},
	"Avignon":          {"Rue de la République"},
	"Béziers":          {"Allées Paul Riquet"},
	"Perpignan":        {"Rue Maréchal Foch"},
	"Toulon":           {"Rue d'Alger"},
	"Le Havre":         {"Rue de Paris"},
	"Rouen":            {"Rue du Gros-Horloge"},
	"Orléans":          {"Rue de la République"},
	"Metz":             {"Rue Serpenoise"},
	"Nancy":            {"Rue Saint-Jean"},
	"Caen":             {"Rue Saint-Pierre"},
	"Poitiers":         {"Rue Magenta"},
	"Limoges":          {"Rue de la Boucherie"},
	"Annecy":           {"Rue Carnot"},
	"Aix-en-Provence":  {"Cours Mirabeau"},
	"Bayonne":          {"Rue d'Espagne"},
	"Pau":              {"Rue Joffre"},
	"La Rochelle":      {"Rue du Palais"},
	"Valence":          {"Rue Victor Hugo"},
	"Chambéry":         {"Rue de Boigne"},
	"Mulhouse":         {"Rue du Sauvage"},
	"Brest":            {"Rue de Siam"},
	"Quimper":          {"Rue Kéréon"},
	"Vannes":           {"Rue Saint-Vincent"},
	"Amiens":           {"Rue des Trois Cailloux"},
	"Chartres":         {"Rue du Bois Merrain"},
}

// DefaultPrimeKeywords are the generic high-traffic-zone markers used
// when no prime axis matches. Each entry is a regex alternative.
var DefaultPrimeKeywords = []string{
	"centre[- ]ville",
	"angle",
	"rue piétonne",
	"fort flux",
	"zone prime",
	"coeur de ville",
}
