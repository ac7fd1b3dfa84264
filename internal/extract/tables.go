package extract

// Reference tables for the extraction heuristics. All tables are ordered and
// immutable: adding an alias or a drug is a data change here, not a code change.

// spanishMonths maps unaccented lowercase month names to month numbers.
var spanishMonths = map[string]int{
	"enero":      1,
	"febrero":    2,
	"marzo":      3,
	"abril":      4,
	"mayo":       5,
	"junio":      6,
	"julio":      7,
	"agosto":     8,
	"septiembre": 9,
	"setiembre":  9,
	"octubre":    10,
	"noviembre":  11,
	"diciembre":  12,
}

// sectionHeaders is the vocabulary of section-opening tokens, matched against
// the unaccented lowercase start of a line. The canonical name is the key the
// section is stored under.
type headerEntry struct {
	token     string
	canonical string
}

var sectionHeaders = []headerEntry{
	{"datos filiatorios", "filiatorios"},
	{"datos", "filiatorios"},
	{"filiatorios", "filiatorios"},
	{"motivo de consulta", "consulta"},
	{"consulta", "consulta"},
	{"evolucion", "evolucion"},
	{"antecedentes", "antecedentes"},
	{"sintomas", "sintomas"},
	{"examen fisico", "examen_fisico"},
	{"examen neurologico", "examen_fisico"},
	{"impresion diagnostica", "diagnostico"},
	{"impresion", "diagnostico"},
	{"diagnostico", "diagnostico"},
	{"estudios complementarios", "complementarios"},
	{"complementarios", "complementarios"},
	{"estudios", "complementarios"},
	{"rmn", "rmn"},
	{"resonancia", "rmn"},
	{"puncion lumbar", "puncion"},
	{"puncion", "puncion"},
	{"lcr", "puncion"},
	{"laboratorio", "laboratorio"},
	{"plan terapeutico", "tratamiento"},
	{"plan", "tratamiento"},
	{"tratamiento", "tratamiento"},
	{"medicacion", "tratamiento"},
	{"solicitud de medicacion", "solicitud"},
	{"solicitud", "solicitud"},
	{"receta", "solicitud"},
	{"comentario", "comentario"},
	{"episodios", "episodios"},
	{"bibliografia", "bibliografia"},
}

// DefaultSection is where text lands when no header has been seen.
const DefaultSection = "general"

// moleculeEntry maps a free-text alias to the canonical molecule name.
// Aliases cover generics, trade names and common misspellings; first match
// wins, so more specific aliases come first. Matching is case-, accent- and
// separator-insensitive (see foldKey).
type moleculeEntry struct {
	alias     string
	canonical string
}

var moleculeAliases = []moleculeEntry{
	{"interferon beta-1a", "Interferón beta-1a"},
	{"interferon beta 1a", "Interferón beta-1a"},
	{"avonex", "Interferón beta-1a"},
	{"rebif", "Interferón beta-1a"},
	{"interferon beta-1b", "Interferón beta-1b"},
	{"interferon beta 1b", "Interferón beta-1b"},
	{"betaferon", "Interferón beta-1b"},
	{"acetato de glatiramero", "Acetato de glatiramero"},
	{"acetato de glatiramer", "Acetato de glatiramero"},
	{"glatiramer", "Acetato de glatiramero"},
	{"copaxone", "Acetato de glatiramero"},
	{"fingolimod", "Fingolimod"},
	{"gilenya", "Fingolimod"},
	{"teriflunomida", "Teriflunomida"},
	{"teriflunomide", "Teriflunomida"},
	{"aubagio", "Teriflunomida"},
	{"dimetilfumarato", "Dimetilfumarato"},
	{"dimetil fumarato", "Dimetilfumarato"},
	{"tecfidera", "Dimetilfumarato"},
	{"natalizumab", "Natalizumab"},
	{"tysabri", "Natalizumab"},
	{"ocrelizumab", "Ocrelizumab"},
	{"ocrevus", "Ocrelizumab"},
	{"rituximab", "Rituximab"},
	{"alemtuzumab", "Alemtuzumab"},
	{"lemtrada", "Alemtuzumab"},
	{"cladribina", "Cladribina"},
	{"mavenclad", "Cladribina"},
	{"siponimod", "Siponimod"},
	{"mayzent", "Siponimod"},
	{"ozanimod", "Ozanimod"},
}

// formEntry maps an alias phrase to a disease-course form.
type formEntry struct {
	alias string
	form  CourseForm
}

var formAliases = []formEntry{
	{"recaidas y remisiones", FormRR},
	{"recurrente remitente", FormRR},
	{"recurrente-remitente", FormRR},
	{"remitente recurrente", FormRR},
	{"remitente-recurrente", FormRR},
	{"em-rr", FormRR},
	{"emrr", FormRR},
	{"rrms", FormRR},
	{"rr", FormRR},
	{"secundariamente progresiva", FormSP},
	{"secundaria progresiva", FormSP},
	{"progresion secundaria", FormSP},
	{"em-sp", FormSP},
	{"emsp", FormSP},
	{"spms", FormSP},
	{"sp", FormSP},
	{"primariamente progresiva", FormPP},
	{"primaria progresiva", FormPP},
	{"progresiva primaria", FormPP},
	{"em-pp", FormPP},
	{"empp", FormPP},
	{"ppms", FormPP},
	{"pp", FormPP},
	{"sindrome clinicamente aislado", FormCIS},
	{"sindrome desmielinizante aislado", FormCIS},
	{"cis", FormCIS},
}

// progressiveMarkers are the strong assertions of a progressive course that
// SP/PP classification requires. Bare "progresivo" in narrative is not enough.
var progressiveMarkers = []string{
	"secundariamente progresiva",
	"secundaria progresiva",
	"progresion secundaria",
	"primaria progresiva",
	"primariamente progresiva",
	"forma progresiva",
	"em-sp",
	"em sp",
	"em-pp",
	"em pp",
	"spms",
	"ppms",
}

// imagingRegions maps anatomical mention substrings to canonical region
// tags; "cortical" folds into yuxtacortical and "espinal" into medular.
type regionEntry struct {
	alias string
	tag   string
}

var imagingRegions = []regionEntry{
	{"periventricular", "periventricular"},
	{"yuxtacortical", "yuxtacortical"},
	{"juxtacortical", "yuxtacortical"},
	{"cortical", "yuxtacortical"},
	{"supratentorial", "supratentorial"},
	{"infratentorial", "infratentorial"},
	{"medular", "medular"},
	{"espinal", "medular"},
}

// imagingTriggers open a new imaging event when found on a line.
var imagingTriggers = []string{"rmn", "resonancia"}

// gadolinium phrasings. Negative phrases are matched before positive ones:
// "sin captacion de contraste" contains "captacion de contraste" and would
// otherwise read as enhancing.
var gdPositive = []string{
	"gd(+)", "gd (+)", "gd+", "gd +",
	"gadolinio (+)", "gadolinio positivo",
	"realce con gadolinio", "refuerzo con gadolinio",
	"capta contraste", "captacion de contraste",
}

var gdNegative = []string{
	"gd(-)", "gd (-)", "gd-", "gd -",
	"gadolinio (-)", "gadolinio negativo",
	"sin realce", "sin captacion",
}

// csfKeywords gate the lumbar-puncture finding.
var csfKeywords = []string{"puncion lumbar", "puncion", "lcr", "bandas oligoclonales", "oligoclonal"}

var csfPositive = []string{"oligoclonal", "positiv"}
var csfNegative = []string{"negativ"}

// suspension markers flip a treatment mention to Suspended.
var suspensionMarkers = []string{
	"suspend", "suspension", "discontinu", "previo", "previa", "roto a", "rota a", "rotacion desde",
}

// bibliographicMarkers exclude citation lines from treatment scanning.
var bibliographicMarkers = []string{
	"et al", "vol.", "lancet", "neurology", "multiple sclerosis journal",
	"revista", "medicina (buenos aires)", "boletin oficial", "bibliografia",
}

// letterheadCities anchor the consultation-date heuristic: a date on a line
// naming one of these is taken as the letterhead date.
var letterheadCities = []string{
	"la plata", "buenos aires", "ciudad autonoma", "caba",
	"mar del plata", "cordoba", "rosario", "mendoza",
}

// onsetAnchors introduce the symptom-onset date.
var onsetAnchors = []string{
	"inicio de sintomas", "inicio de los sintomas", "inicio de la enfermedad",
	"comienzo de sintomas", "primer brote", "primer episodio",
	"asistida desde", "asistido desde",
}

// relapseTokens and relapseNegations feed the approximate relapse count.
var relapseTokens = []string{"brote", "recaida"}
var relapseNegations = []string{"sin", "no", "niega", "libre de", "ningun"}
