package facilities

const (
	CategoryGeneral        = "General Hospital"
	CategoryMultiSpecialty = "Multi-Specialty Hospital"
	CategorySpecialty      = "Specialty Hospital"
	CategoryClinic         = "Clinic / Nursing Home"
	CategoryDiagnostic     = "Diagnostic Center"
	CategoryEmergency      = "Emergency & Trauma Center"
	CategoryMaternity      = "Maternity Hospital"
	CategoryChildren       = "Children's Hospital"
)

const (
	SpecialtyCardiology       = "Cardiology (Heart)"
	SpecialtyOrthopedics      = "Orthopedics (Bones & Joints)"
	SpecialtyNeurology        = "Neurology (Brain & Nerves)"
	SpecialtyGynecology       = "Gynecology & Obstetrics"
	SpecialtyPediatrics       = "Pediatrics"
	SpecialtyDermatology      = "Dermatology (Skin)"
	SpecialtyENT              = "ENT (Ear, Nose, Throat)"
	SpecialtyOphthalmology    = "Ophthalmology (Eye)"
	SpecialtyOncology         = "Oncology (Cancer)"
	SpecialtyPsychiatry       = "Psychiatry / Mental Health"
	SpecialtyNephrology       = "Nephrology (Kidney)"
	SpecialtyGastroenterology = "Gastroenterology"
	SpecialtyPulmonology      = "Pulmonology (Lungs)"
	SpecialtyUrology          = "Urology"
	SpecialtyDentistry        = "Dentistry"
	SpecialtyGeneralMedicine  = "General Medicine"
)

const (
	OwnershipGovernment = "Government Hospital"
	OwnershipPrivate    = "Private Hospital"
	OwnershipTrust      = "Trust / NGO Hospital"
	OwnershipTeaching   = "Teaching Hospital (Medical College)"
)

var (
	Categories = []string{
		CategoryGeneral,
		CategoryMultiSpecialty,
		CategorySpecialty,
		CategoryClinic,
		CategoryDiagnostic,
		CategoryEmergency,
		CategoryMaternity,
		CategoryChildren,
	}

	Specialties = []string{
		SpecialtyCardiology,
		SpecialtyOrthopedics,
		SpecialtyNeurology,
		SpecialtyGynecology,
		SpecialtyPediatrics,
		SpecialtyDermatology,
		SpecialtyENT,
		SpecialtyOphthalmology,
		SpecialtyOncology,
		SpecialtyPsychiatry,
		SpecialtyNephrology,
		SpecialtyGastroenterology,
		SpecialtyPulmonology,
		SpecialtyUrology,
		SpecialtyDentistry,
		SpecialtyGeneralMedicine,
	}

	OwnershipTypes = []string{
		OwnershipGovernment,
		OwnershipPrivate,
		OwnershipTrust,
		OwnershipTeaching,
	}
)

func IsCategory(label string) bool  { return contains(Categories, label) }
func IsSpecialty(label string) bool { return contains(Specialties, label) }
func IsOwnership(label string) bool { return contains(OwnershipTypes, label) }

func contains(set []string, label string) bool {
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}
