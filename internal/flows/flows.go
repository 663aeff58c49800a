package flows

// Flows groups the three flows the API exposes.
type Flows struct {
	AnalyzeSymptoms         *Flow[AnalyzeSymptomsInput, AnalyzeSymptomsOutput]
	MedicalAdvice           *Flow[MedicalAdviceInput, MedicalAdviceOutput]
	ExtractPrescriptionText *Flow[ExtractPrescriptionTextInput, ExtractPrescriptionTextOutput]
}

func New(model Model) *Flows {
	return &Flows{
		AnalyzeSymptoms:         NewAnalyzeSymptoms(model),
		MedicalAdvice:           NewMedicalAdvice(model),
		ExtractPrescriptionText: NewExtractPrescriptionText(model),
	}
}
