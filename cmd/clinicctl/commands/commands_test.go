package commands

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/clinicfinder/backend/cmd/clinicctl/output"
	enquiryapp "github.com/clinicfinder/backend/internal/application/enquiry"
	"github.com/clinicfinder/backend/internal/application/export"
	"github.com/clinicfinder/backend/internal/application/resolution"
	"github.com/clinicfinder/backend/internal/application/seed"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, asJSON bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevJSON := output.Out, jsonOutput
	output.Out, jsonOutput = &buf, asJSON
	t.Cleanup(func() { output.Out, jsonOutput = prevOut, prevJSON })
	return &buf
}

func TestPrintSeedCounts(t *testing.T) {
	counts := &seed.Counts{Concerns: 3, Treatments: 7, Mappings: 7, Packages: 6}

	t.Run("table", func(t *testing.T) {
		buf := captureOutput(t, false)
		require.NoError(t, printSeedCounts(counts))
		assert.Contains(t, buf.String(), "Database seeded successfully")
		assert.Contains(t, buf.String(), "TREATMENTS")
	})

	t.Run("json", func(t *testing.T) {
		buf := captureOutput(t, true)
		require.NoError(t, printSeedCounts(counts))
		assert.JSONEq(t, `{"concerns":3,"treatments":7,"mappings":7,"packages":6}`, buf.String())
	})
}

func TestPrintEnquiries(t *testing.T) {
	items := []enquiryapp.EnquiryListItem{
		{
			EnquiryResponse: enquiryapp.EnquiryResponse{
				ID: uuid.New(), PackageID: "p1", UserName: "Jo", UserEmail: "jo@x.com",
				CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			Package: &resolution.PackageResponse{ClinicName: "Glow Clinic", PackageName: "PRP Under-eye Rejuvenation"},
		},
		{
			EnquiryResponse: enquiryapp.EnquiryResponse{ID: uuid.New(), PackageID: "gone", UserName: "Sam", UserEmail: "sam@x.com"},
		},
	}

	t.Run("table", func(t *testing.T) {
		buf := captureOutput(t, false)
		require.NoError(t, printEnquiries(items))
		out := buf.String()
		assert.Contains(t, out, "Glow Clinic / PRP Under-eye Rejuvenation")
		assert.Contains(t, out, "sam@x.com")
		assert.Contains(t, out, "2 enquiries")
	})

	t.Run("empty json is an array", func(t *testing.T) {
		buf := captureOutput(t, true)
		require.NoError(t, printEnquiries(nil))
		assert.JSONEq(t, `[]`, buf.String())
	})

	t.Run("json keeps null package", func(t *testing.T) {
		buf := captureOutput(t, true)
		require.NoError(t, printEnquiries(items))
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Nil(t, decoded[1]["package"])
	})
}

func TestPrintExport(t *testing.T) {
	buf := captureOutput(t, false)
	require.NoError(t, printExport(&export.Result{
		Key:       "exports/enquiries-20260102T030405Z.csv",
		Rows:      4,
		URL:       "memory://exports/enquiries-20260102T030405Z.csv",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	assert.Contains(t, buf.String(), "Exported 4 enquiries")
	assert.Contains(t, buf.String(), "memory://exports/")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"seed", "enquiries", "search", "export", "migrate"} {
		assert.True(t, names[want], want)
	}
}

func TestSeedCommand_RequiresConfirmation(t *testing.T) {
	buf := captureOutput(t, false)
	seedYes = false

	require.NoError(t, seedCmd.RunE(seedCmd, nil))
	assert.Contains(t, buf.String(), "--yes")
}
