package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTemplate(t *testing.T) {
	assert.True(t, ValidTemplate(TemplateClassic))
	assert.True(t, ValidTemplate(TemplateModern))
	assert.True(t, ValidTemplate(TemplateMinimal))
	assert.False(t, ValidTemplate(""))
	assert.False(t, ValidTemplate("template4"))
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "Jane Doe", ResumeData{FullName: "Jane Doe"}.DeriveTitle())
	assert.Equal(t, DefaultTitle, ResumeData{}.DeriveTitle())
}

func TestClone_IsDeep(t *testing.T) {
	original := ResumeRecord{
		ID: "resume_1_abc",
		Data: ResumeData{
			Skills:     []string{"Go"},
			Education:  []EducationEntry{{Degree: "Bachelor of Science"}},
			Experience: []ExperienceEntry{{Company: "Initech"}},
		},
	}

	clone := original.Clone()
	clone.Data.Skills[0] = "Rust"
	clone.Data.Education[0].Degree = "Master of Science"
	clone.Data.Experience[0].Company = "Globex"

	assert.Equal(t, "Go", original.Data.Skills[0])
	assert.Equal(t, "Bachelor of Science", original.Data.Education[0].Degree)
	assert.Equal(t, "Initech", original.Data.Experience[0].Company)
}

func TestResumeRecord_WireFieldNames(t *testing.T) {
	rec := ResumeRecord{ID: "resume_1_abc", Title: "Jane Doe", Template: TemplateClassic}
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &wire))
	for _, key := range []string{"id", "title", "data", "template", "createdAt", "updatedAt"} {
		assert.Contains(t, wire, key)
	}
}

func TestValidate_AcceptsEmptyOptionalFields(t *testing.T) {
	d := ResumeData{FullName: "Jane Doe"}
	assert.NoError(t, d.Validate())
}

func TestValidate_RejectsBadEmailAndURL(t *testing.T) {
	d := ResumeData{
		Email:    "not-an-email",
		LinkedIn: "not a url",
	}
	err := d.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)

	byField := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "must be a valid email address", byField["Email"])
	assert.Equal(t, "must be a valid URL", byField["LinkedIn"])
}

func TestValidate_AcceptsWellFormedContacts(t *testing.T) {
	d := ResumeData{
		Email:    "jane@example.com",
		LinkedIn: "https://linkedin.com/in/janedoe",
		Website:  "https://janedoe.dev",
		GitHub:   "https://github.com/janedoe",
	}
	assert.NoError(t, d.Validate())
}
