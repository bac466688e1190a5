package tmpl_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
	"github.com/gnames/gnsyn/pkg/tmpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tm := tmpl.New(`\textit{<<name>>} <<authority>>, <<name>>`)
	assert.Equal(t, []string{"name", "authority"}, tm.Fields())
	assert.Equal(t, `\textit{<<name>>} <<authority>>, <<name>>`, tm.String())
}

func TestExecute(t *testing.T) {
	tests := []struct {
		msg   string
		text  string
		slots map[string]string
		res   string
	}{
		{
			msg:   "simple",
			text:  "<<a>> and <<b>>",
			slots: map[string]string{"a": "one", "b": "two"},
			res:   "one and two",
		},
		{
			msg:   "empty value",
			text:  "<<a>>-<<b>>",
			slots: map[string]string{"a": "one", "b": ""},
			res:   "one-",
		},
		{
			msg:   "value looks like placeholder",
			text:  "<<a>> <<b>>",
			slots: map[string]string{"a": "<<b>>", "b": "x"},
			res:   "<<b>> x",
		},
		{
			msg:   "value contains another field name",
			text:  "<<name>>|<<name_note>>",
			slots: map[string]string{"name": "name_note", "name_note": "N"},
			res:   "name_note|N",
		},
		{
			msg:   "no placeholders",
			text:  `\begin{synonymy}`,
			slots: nil,
			res:   `\begin{synonymy}`,
		},
	}

	for _, v := range tests {
		res, err := tmpl.New(v.text).Execute(v.slots)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestExecuteMissingSlot(t *testing.T) {
	_, err := tmpl.New("<<a>> <<zzz>>").Execute(map[string]string{"a": "1"})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.TemplateError, gnErr.Code)
	assert.Equal(t, "zzz", gnErr.Vars[0])
}

func TestIdempotent(t *testing.T) {
	slots := map[string]string{
		"name":      "Ichthyosaurus communis",
		"authority": "deLaBeche1822",
	}
	tm := tmpl.New(`\textit{<<name>>} \cite{<<authority>>}`)
	once, err := tm.Format(slots)
	require.NoError(t, err)
	twice, err := tmpl.New(once).Format(slots)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestValidate(t *testing.T) {
	tm := tmpl.New("<<a>> <<b>>")
	assert.NoError(t, tm.Validate([]string{"a", "b", "c"}))
	assert.Error(t, tm.Validate([]string{"a"}))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		msg, in, res string
	}{
		{"double period", "Lias.. Dorset", "Lias. Dorset"},
		{"many periods", "end....", "end."},
		{"double space", "a  b", "a b"},
		{"tabs and newlines", "a\t\n b", "a b"},
		{"trim", "  a b  ", "a b"},
		{"empty optional fields", "[Member A.] .  ", "[Member A.] ."},
	}
	for _, v := range tests {
		res := tmpl.Sanitize(v.in)
		assert.Equal(t, v.res, res, v.msg)
		assert.NotContains(t, res, "..", v.msg)
		assert.NotContains(t, res, "  ", v.msg)
	}
}

func TestRequired(t *testing.T) {
	slots := map[string]string{"a": "1", "b": " "}
	assert.Equal(t, "", tmpl.Required(slots, "a"))
	assert.Equal(t, "b", tmpl.Required(slots, "a", "b"))
	assert.Equal(t, "c", tmpl.Required(slots, "c"))
}
