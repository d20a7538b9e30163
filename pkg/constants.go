package pkg

const (
	// SortByFrequencyMarker tags the per-document token count files produced
	// by the extraction stage.
	SortByFrequencyMarker = "_Sort_by_Frequency"

	// SortByTermWeightMarker tags the ranked weight files produced by the
	// weighting stage.
	SortByTermWeightMarker = "_Sort_by_Term_Weight"

	// CombinedFrequencyFile collects token counts across the whole corpus.
	CombinedFrequencyFile = "Combined_Sort_by_Frequency.txt"
)
