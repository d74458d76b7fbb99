package rowsource_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcompose/pkg/form"
	"github.com/goliatone/go-formcompose/pkg/rowsource"
	"github.com/goliatone/go-formcompose/pkg/testsupport"
)

func loadPetstore(t *testing.T) []byte {
	t.Helper()
	return testsupport.MustReadFixture(t, filepath.Join("testdata", "petstore.yaml"))
}

func TestFromOpenAPI_CreatePet(t *testing.T) {
	rows, err := rowsource.FromOpenAPI(context.Background(), loadPetstore(t), "createPet")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}

	section := form.NewSection()
	for _, row := range rows {
		section.Attach(row)
	}
	got := form.DescribeSection(section).Rows

	want := []form.RowSnapshot{
		{Name: "birthday", Type: "string", Format: "date", Description: "Approximate is fine"},
		{Name: "kind", Type: "string", Required: true, Metadata: map[string]string{"enum": "cat,dog"}},
		{Name: "name", Type: "string", Label: "Pet name", Required: true},
		{Name: "owner", Type: "object", Metadata: map[string]string{"$ref": "#/components/schemas/Owner"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_MethodPathID(t *testing.T) {
	rows, err := rowsource.FromOpenAPI(context.Background(), loadPetstore(t), "put:/pets/{id}/tags")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "tags" || rows[0].Type != "array" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestFromOpenAPI_Errors(t *testing.T) {
	data := loadPetstore(t)

	if _, err := rowsource.FromOpenAPI(context.Background(), data, "deletePet"); !errors.Is(err, rowsource.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
	if _, err := rowsource.FromOpenAPI(context.Background(), data, "listPets"); !errors.Is(err, rowsource.ErrNoRequestBody) {
		t.Fatalf("expected ErrNoRequestBody, got %v", err)
	}
	if _, err := rowsource.FromOpenAPI(context.Background(), nil, "createPet"); err == nil {
		t.Fatalf("expected error for empty payload")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := rowsource.FromOpenAPI(ctx, data, "createPet"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFromOpenAPI_ExplicitIDWinsOverFallback(t *testing.T) {
	document := []byte(`
openapi: 3.0.3
info: {title: Clash, version: 1.0.0}
paths:
  /pets:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                fallback: {type: string}
      responses:
        '201': {description: created}
  /zoo:
    post:
      operationId: post:/pets
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                explicit: {type: string}
      responses:
        '201': {description: created}
`)

	for i := 0; i < 20; i++ {
		rows, err := rowsource.FromOpenAPI(context.Background(), document, "post:/pets")
		if err != nil {
			t.Fatalf("rows: %v", err)
		}
		if len(rows) != 1 || rows[0].Name != "explicit" {
			t.Fatalf("expected the explicit operationId to win, got %+v", rows)
		}
	}
}
