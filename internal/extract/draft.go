package extract

import "github.com/ulieet/NeuroSoft/constants"

// CourseForm is the disease-course classification of multiple sclerosis.
type CourseForm string

const (
	FormRR  CourseForm = "RR"  // relapsing-remitting
	FormSP  CourseForm = "SP"  // secondary progressive
	FormPP  CourseForm = "PP"  // primary progressive
	FormCIS CourseForm = "CIS" // clinically isolated syndrome
)

// Activity and contrast findings of one imaging study.
const (
	ActivityActive   = "Activa"
	ActivityInactive = "Inactiva"
	GdPositive       = "Positiva"
	GdNegative       = "Negativa"
)

// Treatment status values.
const (
	TreatmentActive    = "Activo"
	TreatmentSuspended = "Suspendido"
)

// Band results of the spinal-fluid finding.
const (
	BandsPositive    = "Sí"
	BandsNegative    = "No"
	BandsNotReported = "No informado"
)

// SourceInfo describes where the raw text came from.
type SourceInfo struct {
	Format   string `json:"tipo"`
	FileName string `json:"nombre_archivo"`
	Pages    int    `json:"paginas,omitempty"`
}

// PatientInfo is the identity sub-record. Every field is optional: the
// assembler never fails because a field is missing.
type PatientInfo struct {
	Name         *string `json:"nombre"`
	DNI          *string `json:"dni"`
	BirthDate    *string `json:"fecha_nacimiento"`
	Insurer      *string `json:"obra_social"`
	MemberNumber *string `json:"nro_afiliado"`
}

// Consultation carries the visit date. The clinician is never resolved at
// extraction time; it is filled during validation.
type Consultation struct {
	Date      *string `json:"fecha"`
	Clinician *string `json:"medico"`
}

// DiseaseInfo is the diagnosis sub-record.
type DiseaseInfo struct {
	Diagnosis *string     `json:"diagnostico"`
	Code      *string     `json:"codigo"`
	Form      *CourseForm `json:"forma"`
	OnsetDate *string     `json:"fecha_inicio"`
	EDSS      *float64    `json:"edss"`
}

// ImagingEvent is one dated RMN study's extracted findings.
type ImagingEvent struct {
	Date     *string  `json:"fecha"`
	Activity *string  `json:"actividad"`
	Gd       *string  `json:"gd"`
	Regions  []string `json:"regiones"`
}

// CSFFinding reports the lumbar puncture / oligoclonal-band status.
type CSFFinding struct {
	Performed bool   `json:"realizada"`
	Bands     string `json:"bandas"`
}

// Studies groups the complementary studies.
type Studies struct {
	Imaging []ImagingEvent `json:"rmn"`
	CSF     CSFFinding     `json:"puncion_lumbar"`
}

// Treatment is one medication mention reconciled across the document.
// Identity for deduplication purposes is (Molecule, Status).
type Treatment struct {
	Molecule  string  `json:"molecula"`
	TradeName *string `json:"comercial"`
	Dose      *string `json:"dosis"`
	Route     *string `json:"via"`
	Frequency *string `json:"frecuencia"`
	Status    *string `json:"estado"`
	StartDate *string `json:"inicio"`
}

// DraftRecord is the structured output of one extraction pass, pending
// clinician validation. Downstream consumers must treat every field as
// optionally absent.
type DraftRecord struct {
	Status       string                          `json:"estado"`
	Source       SourceInfo                      `json:"fuente"`
	Patient      PatientInfo                     `json:"paciente"`
	Consultation Consultation                    `json:"consulta"`
	Disease      DiseaseInfo                     `json:"enfermedad"`
	Studies      Studies                         `json:"complementarios"`
	Treatments   []Treatment                     `json:"tratamientos"`
	Sections     map[string]string               `json:"secciones,omitempty"`
	SourceText   string                          `json:"texto_original"`
	SourceHash   string                          `json:"hash_fuente"`
	Confidence   map[string]constants.Confidence `json:"confidencia"`
}

func strPtr(s string) *string { return &s }
