package contracts

// SheetEvaluator re-evaluates a formula against the current state of a sheet.
// Matches SheetRepository.Evaluate.
type SheetEvaluator func(sheetId string, formula string) (*Evaluation, error)

type ResultDispatcher interface {
	// Subscribe registers a webhook for a formula on a column. An empty
	// webhookUrl removes the subscription for that formula.
	Subscribe(canonicalSheetId string, canonicalColumnId string, formula string, webhookUrl string)
	Notify(canonicalSheetId string, canonicalColumnId string)
	Start()
	Close()
}
