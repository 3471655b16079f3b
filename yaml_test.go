package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type yamlSchedule struct {
	Start    Date              `yaml:"start"`
	Opens    Time              `yaml:"opens"`
	Kickoff  PrimitiveDateTime `yaml:"kickoff"`
	Zone     UtcOffset         `yaml:"zone"`
	Deadline OffsetDateTime    `yaml:"deadline"`
	Grace    Duration          `yaml:"grace"`
}

func TestYAML_roundTrip(t *testing.T) {
	in := yamlSchedule{
		Start:    mustDate(t, 2024, February, 29),
		Opens:    mustTime(t, 9, 0, 0, 0),
		Kickoff:  mustPDT(t, "2024-03-01T18:30:00"),
		Zone:     UtcOffset{-5, 0, 0},
		Deadline: mustODT(t, "2024-03-31T23:59:59-05:00"),
		Grace:    Hours(36),
	}

	b, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.YAMLEq(t, `
start: "2024-02-29"
opens: "09:00:00"
kickoff: "2024-03-01T18:30:00"
zone: "-05:00"
deadline: "2024-03-31T23:59:59-05:00"
grace: P1DT12H
`, string(b))

	var out yamlSchedule
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestYAML_unquoted(t *testing.T) {
	// the resolver tags these as timestamps; the raw text is what counts
	src := `
start: 2024-02-29
kickoff: 2024-03-01T18:30:00
deadline: 2024-03-31T23:59:59Z
grace: PT15M
`
	var out yamlSchedule
	require.NoError(t, yaml.Unmarshal([]byte(src), &out))
	assert.Equal(t, mustDate(t, 2024, February, 29), out.Start)
	assert.Equal(t, mustPDT(t, "2024-03-01T18:30:00"), out.Kickoff)
	assert.Equal(t, "2024-03-31T23:59:59Z", out.Deadline.String())
	assert.Equal(t, Minutes(15), out.Grace)
}

func TestYAML_errors(t *testing.T) {
	var out yamlSchedule

	err := yaml.Unmarshal([]byte("start:\n  - 2024-02-29\n"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNonScalarYAML)
	assert.Contains(t, err.Error(), "line 2")

	err = yaml.Unmarshal([]byte("start: 2023-02-29\n"), &out)
	assert.ErrorIs(t, err, &ComponentRange{Name: "day"})

	err = yaml.Unmarshal([]byte("grace: P1M\n"), &out)
	assert.ErrorIs(t, err, errCalendarUnits)

	_, err = yamlScalar("date", nil)
	assert.ErrorIs(t, err, errNonScalarYAML)
}
