package facilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategory(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		name string
		tags Tags
		want string
	}{
		{"trauma in name wins over amenity", Tags{"name": "City Trauma Centre", "amenity": "hospital"}, CategoryEmergency},
		{"emergency before maternity", Tags{"name": "Women Emergency Care"}, CategoryEmergency},
		{"maternity", Tags{"name": "Sunrise Maternity Home"}, CategoryMaternity},
		{"children", Tags{"name": "Rainbow Children Hospital"}, CategoryChildren},
		{"clinic", Tags{"name": "Dr. Sharma Clinic", "amenity": "clinic"}, CategoryClinic},
		{"nursing home", Tags{"name": "Gupta Nursing Home"}, CategoryClinic},
		{"diagnostic", Tags{"name": "Apex Diagnostic Lab"}, CategoryDiagnostic},
		{"hospital with speciality", Tags{"name": "Heartline", "amenity": "hospital", "speciality": "cardiology"}, CategorySpecialty},
		{"plain hospital", Tags{"name": "Civil Hospital", "amenity": "hospital"}, CategoryGeneral},
		{"doctors amenity falls back", Tags{"name": "Shiv Health Point", "amenity": "doctors"}, CategoryMultiSpecialty},
		{"case folded", Tags{"name": "EMERGENCY WING"}, CategoryEmergency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.tags).Category)
		})
	}
}

func TestClassifySpecialtiesUnion(t *testing.T) {
	c := NewClassifier()

	got := c.Classify(Tags{"name": "Cardiac Kidney Care"}).Specialties
	assert.Equal(t, []string{SpecialtyCardiology, SpecialtyNephrology}, got)

	got = c.Classify(Tags{"name": "Life Care", "speciality": "oncology;urology"}).Specialties
	assert.Equal(t, []string{SpecialtyOncology, SpecialtyUrology}, got)
}

func TestClassifySpecialtiesDefault(t *testing.T) {
	c := NewClassifier()

	got := c.Classify(Tags{"name": "Sai Hospital"}).Specialties
	assert.Equal(t, []string{SpecialtyGeneralMedicine}, got)
}

func TestClassifyOwnership(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, OwnershipGovernment, c.Classify(Tags{"name": "Govt. Civil Hospital"}).Ownership)
	assert.Equal(t, OwnershipGovernment, c.Classify(Tags{"name": "Civil", "operator:type": "government"}).Ownership)
	assert.Equal(t, OwnershipTrust, c.Classify(Tags{"name": "Guru Nanak Trust Hospital"}).Ownership)
	assert.Equal(t, OwnershipTeaching, c.Classify(Tags{"name": "Christian Medical College"}).Ownership)
	assert.Equal(t, OwnershipTeaching, c.Classify(Tags{"name": "X", "operator:type": "university"}).Ownership)
	assert.Equal(t, OwnershipPrivate, c.Classify(Tags{"name": "Max Hospital"}).Ownership)
}

func TestClassifyIsTotal(t *testing.T) {
	c := NewClassifier()

	inputs := []Tags{
		nil,
		{},
		{"name": ""},
		{"amenity": "hospital"},
		{"name": "   "},
		{"name": "Ñandú Clínica 🏥"},
		{"speciality": "eye;ent;dental;psychiatry"},
	}

	for _, in := range inputs {
		got := c.Classify(in)
		assert.True(t, IsCategory(got.Category), "category %q", got.Category)
		assert.True(t, IsOwnership(got.Ownership), "ownership %q", got.Ownership)
		assert.NotEmpty(t, got.Specialties)
		for _, s := range got.Specialties {
			assert.True(t, IsSpecialty(s), "specialty %q", s)
		}
	}
}

func TestRuleSetAllReportsLabelOnce(t *testing.T) {
	rs := RuleSet{
		Rules: []Rule{
			{"a", NameContains("x")},
			{"a", NameContains("y")},
			{"b", NameContains("y")},
		},
		Fallback: "z",
	}

	assert.Equal(t, []string{"a", "b"}, rs.All(Tags{"name": "xy"}))
	assert.Equal(t, []string{"z"}, rs.All(Tags{"name": "q"}))
	assert.Equal(t, "z", rs.First(Tags{}))
}
