// Package validate checks clinician-submitted record payloads against the
// canonical record shape before they are stored as validated histories.
package validate

// BuildHistoryJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the validated clinical record.
func BuildHistoryJSONSchema() map[string]any {
	dateProp := map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}

	patient := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"nombre":           map[string]any{"type": "string", "minLength": 1},
			"dni":              map[string]any{"type": "string", "pattern": `^\d{6,8}$`},
			"fecha_nacimiento": dateProp,
			"obra_social":      map[string]any{"type": "string"},
			"nro_afiliado":     map[string]any{"type": "string"},
		},
		"required": []string{"nombre"},
	}

	consultation := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fecha":  dateProp,
			"medico": map[string]any{"type": "string"},
		},
		"required": []string{"fecha"},
	}

	disease := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"diagnostico":  map[string]any{"type": "string"},
			"codigo":       map[string]any{"type": "string"},
			"forma":        map[string]any{"type": "string", "enum": []string{"RR", "SP", "PP", "CIS"}},
			"fecha_inicio": dateProp,
			"edss":         map[string]any{"type": "number", "minimum": 0.0, "maximum": 10.0},
		},
	}

	imagingEvent := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fecha":     dateProp,
			"actividad": map[string]any{"type": "string", "enum": []string{"Activa", "Inactiva"}},
			"gd":        map[string]any{"type": "string", "enum": []string{"Positiva", "Negativa"}},
			"regiones":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}

	studies := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rmn": map[string]any{"type": "array", "items": imagingEvent},
			"puncion_lumbar": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"realizada": map[string]any{"type": "boolean"},
					"bandas":    map[string]any{"type": "string", "enum": []string{"Sí", "No", "No informado"}},
				},
			},
		},
	}

	treatment := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"molecula":   map[string]any{"type": "string", "minLength": 1},
			"comercial":  map[string]any{"type": "string"},
			"dosis":      map[string]any{"type": "string"},
			"via":        map[string]any{"type": "string"},
			"frecuencia": map[string]any{"type": "string"},
			"estado":     map[string]any{"type": "string", "enum": []string{"Activo", "Suspendido"}},
			"inicio":     dateProp,
		},
		"required": []string{"molecula"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"paciente":        patient,
			"consulta":        consultation,
			"enfermedad":      disease,
			"complementarios": studies,
			"tratamientos":    map[string]any{"type": "array", "items": treatment},
			"medico":          map[string]any{"type": "string"},
			"observaciones":   map[string]any{"type": "string"},
		},
		"required": []string{"paciente", "consulta"},
	}
}
