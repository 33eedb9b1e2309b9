package task

// Choice pairs an enum value with the copy the frontend shows for it.
type Choice struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Profile describes one pipeline exposed to the frontend pickers.
type Profile struct {
	ID            Operation `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Methods       []Choice  `json:"methods,omitempty"`
	Lengths       []Choice  `json:"lengths,omitempty"`
	DefaultMethod Method    `json:"defaultMethod,omitempty"`
	DefaultLength Length    `json:"defaultLength,omitempty"`
	OutputFile    string    `json:"outputFile"`
}

// Store exposes profile retrieval for HTTP handlers.
type Store interface {
	List() []Profile
	FindByID(id Operation) (Profile, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Profile
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied profiles.
func NewMemoryStore(items []Profile) *MemoryStore {
	return &MemoryStore{items: append([]Profile(nil), items...)}
}

// List returns the predefined profile list.
func (s *MemoryStore) List() []Profile {
	return append([]Profile(nil), s.items...)
}

// FindByID looks up a profile by operation.
func (s *MemoryStore) FindByID(id Operation) (Profile, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Profile{}, false
}

// Seed provides the two built-in pipelines offered by the product.
func Seed() []Profile {
	return []Profile{
		{
			ID:          OperationSummarize,
			Name:        "Summarization",
			Description: "Condense a passage into its key points.",
			Methods: []Choice{
				{
					ID:          string(MethodAbstractive),
					Label:       "Abstractive",
					Description: "Generates new sentences that capture the meaning of the text.",
				},
				{
					ID:          string(MethodExtractive),
					Label:       "Extractive",
					Description: "Selects the most important sentences from the text itself.",
				},
			},
			Lengths: []Choice{
				{ID: string(LengthShort), Label: "Short", Description: "One or two sentences."},
				{ID: string(LengthMedium), Label: "Medium", Description: "A single paragraph."},
				{ID: string(LengthLong), Label: "Long", Description: "A detailed multi-paragraph summary."},
			},
			DefaultMethod: DefaultMethod,
			DefaultLength: DefaultLength,
			OutputFile:    "AI_output.txt",
		},
		{
			ID:          OperationParaphrase,
			Name:        "Paraphrasing",
			Description: "Rewrite a passage in fresh wording while keeping its meaning.",
			OutputFile:  "AI_paraphrase.txt",
		},
	}
}
