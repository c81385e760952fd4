package cmd

import (
	"bytes"
	"strings"
	"testing"

	"mspro-labs/lunch-picker/internal/models"
)

func TestPrintCatalog(t *testing.T) {
	var out bytes.Buffer
	printCatalog(&out, []models.Restaurant{
		{Name: "파스타", Category: models.Western, Price: 14000, IsSpicy: models.Flag(false), HasSoup: models.Flag(true)},
	}, 10000)

	text := out.String()
	if !strings.Contains(text, "(1)") {
		t.Errorf("Expected count in header, got:\n%s", text)
	}
	if !strings.Contains(text, "1. 파스타 - 14,000원 #양식 #플렉스 #국물") {
		t.Errorf("Unexpected line, got:\n%s", text)
	}
}

func TestPrintCatalogEmpty(t *testing.T) {
	var out bytes.Buffer
	printCatalog(&out, nil, 10000)
	if !strings.Contains(out.String(), "No restaurants found.") {
		t.Errorf("Expected empty notice, got:\n%s", out.String())
	}
}
