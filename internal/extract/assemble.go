package extract

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/ulieet/NeuroSoft/constants"
)

// maxSourceText caps the truncated copy of the source text carried on the
// draft.
const maxSourceText = 20000

// Engine runs the extraction heuristics over one document's text. It is
// synchronous and stateless per call: every Process invocation is a pure
// function of its input, so independent documents can be processed by
// parallel workers with no coordination.
type Engine struct {
	Logger    *slog.Logger
	Dates     *DateResolver
	Segmenter *Segmenter
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		Logger:    logger,
		Dates:     &DateResolver{},
		Segmenter: NewSegmenter(),
	}
}

// Process turns raw clinical narrative into a structured draft record. It
// never fails: an empty or unreadable text produces a draft with every leaf
// field null rather than an error.
func (e *Engine) Process(rawText, formatLabel, fileName string) *DraftRecord {
	draft := &DraftRecord{
		Status:     string(constants.HistoryStatusProcessed),
		Source:     SourceInfo{Format: formatLabel, FileName: fileName},
		SourceHash: ContentHash(rawText),
		Confidence: map[string]constants.Confidence{},
		Studies:    Studies{CSF: CSFFinding{Bands: BandsNotReported}},
	}

	text := strings.TrimSpace(rawText)
	if text == "" {
		e.Logger.Warn("extract.empty_source", "file", fileName, "format", formatLabel)
		return draft
	}

	sections := e.Segmenter.Segment(text)
	draft.Sections = sections
	draft.SourceText = truncateRunes(text, maxSourceText)

	// identity
	if name, conf := e.extractName(text); name != "" {
		draft.Patient.Name = strPtr(name)
		draft.Confidence["nombre"] = conf
	}
	if dni := extractDNI(text); dni != "" {
		draft.Patient.DNI = strPtr(dni)
		draft.Confidence["dni"] = constants.ConfidenceHigh
	}
	if insurer, member := extractInsurer(text); insurer != "" || member != "" {
		if insurer != "" {
			draft.Patient.Insurer = strPtr(insurer)
		}
		if member != "" {
			draft.Patient.MemberNumber = strPtr(member)
		}
	}
	birth := ""
	if d, ok := e.extractBirthDate(text); ok {
		birth = d
		draft.Patient.BirthDate = strPtr(d)
	}

	// consultation; the clinician is resolved during validation, never here
	if d, conf := e.extractConsultationDate(text, birth); d != "" {
		draft.Consultation.Date = strPtr(d)
		draft.Confidence["fecha_consulta"] = conf
	}

	// disease: diagnosis from sections first (precision), then raw text
	diagnosis := ""
	diagConf := constants.ConfidenceLow
	if body, ok := sections["diagnostico"]; ok {
		if dx := diagnosisFromSection(body); dx != "" {
			diagnosis, diagConf = dx, constants.ConfidenceHigh
		}
	}
	if diagnosis == "" {
		if dx := extractDiagnosis(text); dx != "" {
			diagnosis = dx
		}
	}
	if diagnosis != "" {
		draft.Disease.Diagnosis = strPtr(diagnosis)
		draft.Confidence["diagnostico"] = diagConf
	}

	e.classifyForm(draft, sections, text, diagnosis)

	if v, ok := extractEDSS(text); ok {
		draft.Disease.EDSS = &v
		draft.Confidence["edss"] = constants.ConfidenceHigh
	}
	if d, ok := e.extractOnsetDate(text); ok {
		draft.Disease.OnsetDate = strPtr(d)
		draft.Confidence["fecha_inicio"] = constants.ConfidenceMedium
	} else {
		// fall back to a date inside the narrative sections
		for _, name := range []string{"evolucion", "consulta", "diagnostico", DefaultSection} {
			if body, ok := sections[name]; ok {
				if d, ok := e.Dates.Resolve(body); ok {
					draft.Disease.OnsetDate = strPtr(d)
					draft.Confidence["fecha_inicio"] = constants.ConfidenceLow
					break
				}
			}
		}
	}

	// complementary studies
	draft.Studies.Imaging = e.extractImaging(text)
	csf, csfConf := extractCSF(text)
	draft.Studies.CSF = csf
	draft.Confidence["puncion_lumbar"] = csfConf

	// treatments: request/order sections supersede narrative mentions
	draft.Treatments = e.extractTreatments(text, map[string]bool{"solicitud": true}, sections)

	e.Logger.Info("extract.ok",
		"file", fileName,
		"format", formatLabel,
		"sections", len(sections),
		"treatments", len(draft.Treatments),
		"imaging_events", len(draft.Studies.Imaging),
		"dni_found", draft.Patient.DNI != nil,
	)
	return draft
}

// classifyForm applies the disease-form normalizer per section, with the
// progressive-marker disambiguation done against the whole document.
func (e *Engine) classifyForm(draft *DraftRecord, sections map[string]string, text, diagnosis string) {
	if !strings.Contains(foldLine(text), "esclerosis") {
		return
	}
	// The diagnosis section wins; remaining sections are visited in sorted
	// order so re-segmentation of identical input stays deterministic.
	names := make([]string, 0, len(sections))
	for name := range sections {
		if name != "diagnostico" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := sections["diagnostico"]; ok {
		names = append([]string{"diagnostico"}, names...)
	}

	for _, name := range names {
		form, ok := NormalizeForm(sections[name], text, diagnosis)
		if !ok {
			continue
		}
		f := form
		draft.Disease.Form = &f
		if name == "diagnostico" {
			draft.Confidence["forma"] = constants.ConfidenceHigh
		} else {
			draft.Confidence["forma"] = constants.ConfidenceMedium
		}
		return
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
