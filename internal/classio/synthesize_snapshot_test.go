package classio_test

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cxxprops/cxxprops/internal/classio"
	"github.com/cxxprops/cxxprops/internal/properties"
)

// TestSynthesizeFixtures runs the full decode -> synthesize -> encode
// pipeline over the class descriptions in testdata/fixtures and pins the
// resulting property documents with golden snapshots rather than
// re-asserting every field by hand.
func TestSynthesizeFixtures(t *testing.T) {
	fixtures, err := os.ReadDir("../../testdata/fixtures")
	if err != nil {
		t.Fatalf("reading fixtures dir: %v", err)
	}

	for _, entry := range fixtures {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()

		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile("../../testdata/fixtures/" + name)
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}

			class, errs := classio.DecodeClass(data, name)
			if len(errs) > 0 {
				t.Fatalf("decode errors: %v", errs)
			}

			result := properties.BuildProperties(class)
			doc := classio.EncodeClassProperties(class.Name, result)

			out, err := classio.MarshalIndent(doc)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			snaps.MatchSnapshot(t, string(out))
		})
	}
}
