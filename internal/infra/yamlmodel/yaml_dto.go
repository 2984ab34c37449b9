package yamlmodel

type yamlModel struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`

	Domain     yamlPoint `yaml:"domain"`
	DxDyDz     yamlPoint `yaml:"dx_dy_dz"`
	TimeWindow float64   `yaml:"time_window"`

	Waveform yamlWaveform `yaml:"waveform"`
	Source   yamlSource   `yaml:"source"`

	Bowtie    yamlBowtie    `yaml:"bowtie"`
	Placement yamlPlacement `yaml:"placement"`
	FeedGap   *yamlFeedGap  `yaml:"feed_gap"`
	Material  string        `yaml:"material"`

	Probe *yamlProbe `yaml:"probe"`
	Views yamlViews  `yaml:"views"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type yamlWaveform struct {
	Shape     string  `yaml:"shape"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	ID        string  `yaml:"id"`
}

type yamlSource struct {
	Polarisation string  `yaml:"polarisation"`
	Impedance    float64 `yaml:"impedance"`
}

type yamlBowtie struct {
	Length float64 `yaml:"length"`
	Height float64 `yaml:"height"`
}

type yamlPlacement struct {
	Variant    string  `yaml:"variant"`
	OffsetAxis string  `yaml:"offset_axis"`
	Offset     float64 `yaml:"offset"`
}

type yamlFeedGap struct {
	Axis     string `yaml:"axis"`
	Positive *int   `yaml:"positive"`
	Negative *int   `yaml:"negative"`
}

type yamlProbe struct {
	Offset yamlPoint `yaml:"offset"`
}

type yamlViews struct {
	FullDomain bool `yaml:"full_domain"`
}
