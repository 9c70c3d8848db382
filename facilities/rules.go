package facilities

var nameAndSpeciality = []string{"name", "speciality"}

var CategoryRules = RuleSet{
	Rules: []Rule{
		{CategoryEmergency, NameContains("emergency", "trauma")},
		{CategoryMaternity, NameContains("maternity", "women")},
		{CategoryChildren, NameContains("children", "pediatric")},
		{CategoryClinic, NameContains("clinic", "nursing")},
		{CategoryDiagnostic, NameContains("diagnostic")},
		{CategorySpecialty, AllOf(TagEquals("amenity", "hospital"), TagPresent("speciality"))},
		{CategoryGeneral, TagEquals("amenity", "hospital")},
	},
	Fallback: CategoryMultiSpecialty,
}

// Names are matched on every stem; the speciality tag only on the leading one.
var SpecialtyRules = RuleSet{
	Rules: []Rule{
		{SpecialtyCardiology, AnyOf(NameContains("cardiac", "heart"), specialityContains("cardiac"))},
		{SpecialtyOrthopedics, AnyOf(NameContains("ortho", "bone"), specialityContains("ortho"))},
		{SpecialtyNeurology, AnyOf(NameContains("neuro", "brain"), specialityContains("neuro"))},
		{SpecialtyGynecology, AnyOf(NameContains("gynec", "women"), specialityContains("gynec"))},
		{SpecialtyPediatrics, AnyOf(NameContains("pediatric", "children"), specialityContains("pediatric"))},
		{SpecialtyDermatology, AnyOf(NameContains("derma", "skin"), specialityContains("derma"))},
		{SpecialtyENT, AnyOf(NameContains("ent", "ear"), specialityContains("ent"))},
		{SpecialtyOphthalmology, AnyOf(NameContains("eye", "ophthal"), specialityContains("eye"))},
		{SpecialtyOncology, AnyOf(NameContains("cancer", "onco"), specialityContains("onco"))},
		{SpecialtyPsychiatry, AnyOf(NameContains("psych", "mental"), specialityContains("psych"))},
		{SpecialtyNephrology, AnyOf(NameContains("nephro", "kidney"), specialityContains("nephro"))},
		{SpecialtyGastroenterology, AnyOf(NameContains("gastro", "digestive"), specialityContains("gastro"))},
		{SpecialtyPulmonology, AnyOf(NameContains("pulmo", "lung"), specialityContains("pulmo"))},
		{SpecialtyUrology, Contains(nameAndSpeciality, "uro")},
		{SpecialtyDentistry, AnyOf(NameContains("dental", "tooth"), specialityContains("dental"))},
	},
	Fallback: SpecialtyGeneralMedicine,
}

var OwnershipRules = RuleSet{
	Rules: []Rule{
		{OwnershipGovernment, AnyOf(NameContains("government", "govt"), TagEquals("operator:type", "government"))},
		{OwnershipTrust, AnyOf(NameContains("trust", "ngo"), TagEquals("operator:type", "ngo"))},
		{OwnershipTeaching, AnyOf(NameContains("medical college", "teaching"), TagEquals("operator:type", "university"))},
	},
	Fallback: OwnershipPrivate,
}

func specialityContains(keywords ...string) Matcher {
	return Contains([]string{"speciality"}, keywords...)
}
