package validators

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/stretchr/testify/require"
)

// sectionContext builds a context for one section of an article about entity
func sectionContext(language, heading string, level int, entity string) *types.ValidationContext {
	ctx := &types.ValidationContext{
		Language: language,
		Section:  &types.SectionInfo{Heading: heading, Level: level, ContentZone: types.ZoneMain},
	}
	if entity != "" {
		ctx.BusinessInfo = &types.BusinessInfo{SeedKeyword: entity}
	}
	return ctx
}

func rulesOf(violations []types.Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Rule)
	}
	return out
}

func byRule(violations []types.Violation, rule string) []types.Violation {
	var out []types.Violation
	for _, v := range violations {
		if v.Rule == rule {
			out = append(out, v)
		}
	}
	return out
}

func loadSample(t *testing.T, lang, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", lang, name+".md"))
	require.NoError(t, err)
	return string(data)
}

func words(n int) string {
	return strings.Repeat("word ", n)
}
