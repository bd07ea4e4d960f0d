package orbits

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ExportConfig configures the exporting of a scenario result.
type ExportConfig struct {
	Filename  string
	OutputDir string // defaults to the output path of the library configuration
	AsCSV     bool   // one locus file per orbit
	AsJSON    bool   // the whole result as a single document
	Timestamp bool   // append the epoch to the file names
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.AsJSON
}

// StateDocument is the exported form of an OrbitalState. Angles are in degrees.
type StateDocument struct {
	Position      [2]float64 `json:"position"`
	Velocity      [2]float64 `json:"velocity"`
	Radius        float64    `json:"radius"`
	PositionAngle float64    `json:"positionAngle"`
	Speed         float64    `json:"speed"`
	FlightAngle   float64    `json:"flightAngle"`
}

// ElementsDocument is the exported form of OrbitalElements. Angles are in degrees.
type ElementsDocument struct {
	Kind            string   `json:"kind"`
	SemilatusRectum float64  `json:"semilatusRectum"`
	Eccentricity    float64  `json:"eccentricity"`
	PeriapsisAngle  float64  `json:"periapsisAngle"`
	TrueAnomaly     float64  `json:"trueAnomaly"`
	Periapsis       float64  `json:"periapsis"`
	Apoapsis        *float64 `json:"apoapsis,omitempty"`
	SemimajorAxis   *float64 `json:"semimajorAxis,omitempty"`
}

// OrbitDocument groups a state, its elements and the sampled conic.
type OrbitDocument struct {
	State    StateDocument    `json:"state"`
	Elements ElementsDocument `json:"elements"`
	Locus    []Point          `json:"locus"`
}

// ResultDocument is the exported form of a scenario Result.
type ResultDocument struct {
	Epoch   string        `json:"epoch"`
	JD      float64       `json:"jd"`
	Polar   bool          `json:"polar"`
	Scale   float64       `json:"scale"`
	DeltaV  [2]float64    `json:"deltaV"`
	Initial OrbitDocument `json:"initial"`
	Final   OrbitDocument `json:"final"`
}

// NewStateDocument converts a state for export.
func NewStateDocument(st OrbitalState) StateDocument {
	return StateDocument{
		Position:      [2]float64{st.Position().X, st.Position().Y},
		Velocity:      [2]float64{st.Velocity().X, st.Velocity().Y},
		Radius:        st.PositionRadius(),
		PositionAngle: Rad2deg(st.PositionAngle()),
		Speed:         st.FlightSpeed(),
		FlightAngle:   Rad2deg180(st.FlightAngle()),
	}
}

// NewElementsDocument converts orbital elements for export.
func NewElementsDocument(el OrbitalElements) ElementsDocument {
	doc := ElementsDocument{
		Kind:            ConicFromElements(el).Kind().String(),
		SemilatusRectum: el.SemilatusRectum(),
		Eccentricity:    el.Eccentricity(),
		PeriapsisAngle:  Rad2deg(el.PeriapsisAngle()),
		TrueAnomaly:     Rad2deg180(el.TrueAnomaly()),
		Periapsis:       el.Periapsis(),
	}
	if ra, ok := el.Apoapsis(); ok {
		doc.Apoapsis = &ra
	}
	if a, ok := el.SemimajorAxis(); ok {
		doc.SemimajorAxis = &a
	}
	return doc
}

// NewResultDocument converts a scenario result computed at the provided epoch.
func NewResultDocument(res Result, epoch time.Time) ResultDocument {
	return ResultDocument{
		Epoch:  epoch.UTC().Format(time.RFC3339),
		JD:     julian.TimeToJD(epoch),
		Polar:  res.Polar,
		Scale:  res.Scale,
		DeltaV: [2]float64{res.DeltaV.X, res.DeltaV.Y},
		Initial: OrbitDocument{
			State:    NewStateDocument(res.Initial),
			Elements: NewElementsDocument(res.InitialElements),
			Locus:    res.InitialLocus,
		},
		Final: OrbitDocument{
			State:    NewStateDocument(res.Final),
			Elements: NewElementsDocument(res.FinalElements),
			Locus:    res.FinalLocus,
		},
	}
}

// WriteResultJSON writes the result document to w.
func WriteResultJSON(w io.Writer, res Result, epoch time.Time) error {
	return json.NewEncoder(w).Encode(NewResultDocument(res, epoch))
}

// WriteLocusCSV writes a locus as CSV records, preceded by commented header lines.
func WriteLocusCSV(w io.Writer, locus []Point, polar bool, title string) error {
	cols := []string{"x", "y"}
	if polar {
		cols = []string{"angle", "radius"}
	}
	if _, err := fmt.Fprintf(w, "# %s\n# Records are %s,%s. Angles are in radians.\n", title, cols[0], cols[1]); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, pt := range locus {
		if err := cw.Write([]string{strconv.FormatFloat(pt[0], 'g', -1, 64), strconv.FormatFloat(pt[1], 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes the result as configured and returns the paths of the created files.
func Export(res Result, conf ExportConfig, epoch time.Time) ([]string, error) {
	if conf.IsUseless() {
		return nil, nil
	}
	dir := conf.OutputDir
	if dir == "" {
		libConf, err := orbitsConfig()
		if err != nil {
			return nil, err
		}
		dir = libConf.OutputDir
	}
	name := conf.Filename
	if name == "" {
		name = "orbit"
	}
	if conf.Timestamp {
		t := epoch.UTC()
		name = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}

	var paths []string
	if conf.AsCSV {
		created := epoch.UTC().Format(time.RFC3339)
		for _, orbit := range []struct {
			suffix string
			locus  []Point
			conic  ConicSection
		}{{"initial", res.InitialLocus, res.InitialConic}, {"final", res.FinalLocus, res.FinalConic}} {
			path := filepath.Join(dir, fmt.Sprintf("locus-%s-%s.csv", name, orbit.suffix))
			title := fmt.Sprintf("%s orbit (%s), computed at %s", orbit.suffix, orbit.conic, created)
			if err := writeFile(path, func(w io.Writer) error {
				return WriteLocusCSV(w, orbit.locus, res.Polar, title)
			}); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	if conf.AsJSON {
		path := filepath.Join(dir, fmt.Sprintf("result-%s.json", name))
		if err := writeFile(path, func(w io.Writer) error {
			return WriteResultJSON(w, res, epoch)
		}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
