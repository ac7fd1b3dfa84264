package repository

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/ulieet/NeuroSoft/constants"
	"github.com/ulieet/NeuroSoft/gen/ent"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateHistory_StartsPendingValidation(t *testing.T) {
	client := openTestClient(t)
	repo := NewHistoryRepository(client, testLogger())
	ctx := context.Background()

	h, err := repo.CreateHistory(ctx, &CreateHistoryRequest{
		FileName:    "gomez.pdf",
		Format:      constants.FileTypePDF,
		Fingerprint: "31998442|2020-11-16|abc123abc123",
		SourceHash:  "abc123abc123",
		Draft: map[string]interface{}{
			"paciente": map[string]interface{}{"nombre": "Gómez, Ana"},
		},
	})
	if err != nil {
		t.Fatalf("CreateHistory: %v", err)
	}
	if h.Status != string(constants.HistoryStatusPending) {
		t.Errorf("status = %q; want %q", h.Status, constants.HistoryStatusPending)
	}
	if h.ValidatedAt != nil {
		t.Errorf("validated_at = %v; want unset on import", h.ValidatedAt)
	}
}

func TestSetValidated_MarksValidated(t *testing.T) {
	client := openTestClient(t)
	repo := NewHistoryRepository(client, testLogger())
	ctx := context.Background()

	h, err := repo.CreateHistory(ctx, &CreateHistoryRequest{
		FileName:    "gomez.pdf",
		Format:      constants.FileTypePDF,
		Fingerprint: "31998442|2020-11-16|def456def456",
		SourceHash:  "def456def456",
		Draft:       map[string]interface{}{"consulta": map[string]interface{}{"fecha": "2020-11-16"}},
	})
	if err != nil {
		t.Fatalf("CreateHistory: %v", err)
	}

	payload := map[string]interface{}{
		"paciente": map[string]interface{}{"nombre": "Gómez, Ana"},
		"consulta": map[string]interface{}{"fecha": "2020-11-16"},
	}
	got, err := repo.SetValidated(ctx, h.ID, payload)
	if err != nil {
		t.Fatalf("SetValidated: %v", err)
	}
	if got.Status != string(constants.HistoryStatusValidated) {
		t.Errorf("status = %q; want %q", got.Status, constants.HistoryStatusValidated)
	}
	if got.ValidatedAt == nil {
		t.Error("validated_at not set")
	}
	pac, ok := got.Validated["paciente"].(map[string]interface{})
	if !ok || pac["nombre"] != "Gómez, Ana" {
		t.Errorf("validated payload = %v; want clinician record stored", got.Validated)
	}
}
