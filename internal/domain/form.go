package domain

// Form is the full state of the tool at "generate" time.
type Form struct {
	CityA    RowList `json:"cityA" yaml:"city_a"`
	CityB    RowList `json:"cityB" yaml:"city_b"`
	Adults   Field   `json:"adults" yaml:"adults"`
	Children Field   `json:"children" yaml:"children"`
	Order    string  `json:"order" yaml:"order"`
}

// NewForm returns a form with one empty row per city.
func NewForm() Form {
	f := Form{}
	f.CityA.Add()
	f.CityB.Add()
	return f
}

// Section is one labeled city summary inside a display block.
type Section struct {
	Label   string `json:"label"` // "City 1 (Makkah)"
	City    string `json:"city"`
	Summary string `json:"summary"`
}

// DisplayBlock is the structured form of one ranked package.
type DisplayBlock struct {
	Index     int     `json:"index"`
	Heading   string  `json:"heading"`
	First     Section `json:"first"`
	Second    Section `json:"second"`
	PerPerson string  `json:"perPerson"`
	Total     string  `json:"total"`
	Text      string  `json:"text"` // plain-text form of the same block
}

// Rendering is the formatter output.
type Rendering struct {
	Blocks   []DisplayBlock `json:"displayBlocks"`
	CopyText string         `json:"copyText"`
	Empty    bool           `json:"empty"`
	Message  string         `json:"message,omitempty"`
}

// CanCopy reports whether an aggregate copy action should be offered.
func (r Rendering) CanCopy() bool { return !r.Empty && r.CopyText != "" }

// Result is what the boundary layer renders after a generate action.
type Result struct {
	Rendering
	Packages     []Package `json:"packages,omitempty"`
	ErrorMessage *string   `json:"errorMessage"`
	Notice       string    `json:"notice,omitempty"`
	ClipID       string    `json:"clipId,omitempty"`
}
