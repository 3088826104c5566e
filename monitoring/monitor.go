// Package monitoring turns a process that hosts sequences into a server
// that allows external inspection of the sequences' state.
package monitoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"sort"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/numseq/monitoring/web"
	"github.com/sarchlab/numseq/seq"
)

// Monitor exposes the state of registered sequences over HTTP.
type Monitor struct {
	portNumber int
	actualPort int

	sequencesLock sync.Mutex
	sequences     []*seq.Sequence
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterSequence registers a sequence to be monitored.
func (m *Monitor) RegisterSequence(s *seq.Sequence) {
	m.sequencesLock.Lock()
	defer m.sequencesLock.Unlock()

	m.sequences = append(m.sequences, s)
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	fs := web.GetAssets()
	fServer := http.FileServer(fs)
	r.HandleFunc("/api/list_sequences", m.listSequences)
	r.HandleFunc("/api/sequence/{name}/describe", m.describeSequence)
	r.HandleFunc("/api/sequence/{name}", m.listSequenceDetails)
	r.HandleFunc("/api/levels", m.listLevels)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(fServer)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.actualPort = listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(
		os.Stderr,
		"Monitoring sequences with http://localhost:%d\n",
		m.actualPort)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

// OpenDashboard opens the monitoring page in the default browser. It must
// be called after StartServer.
func (m *Monitor) OpenDashboard() {
	if m.actualPort == 0 {
		panic("the server must be started before opening the dashboard")
	}

	err := browser.OpenURL(
		"http://localhost:" + strconv.Itoa(m.actualPort))
	dieOnErr(err)
}

func (m *Monitor) listSequences(w http.ResponseWriter, _ *http.Request) {
	m.sequencesLock.Lock()
	defer m.sequencesLock.Unlock()

	fmt.Fprint(w, "[")
	for i, s := range m.sequences {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", s.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) listSequenceDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s := m.findSequenceOr404(w, name)
	if s == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(s)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) describeSequence(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s := m.findSequenceOr404(w, name)
	if s == nil {
		return
	}

	_, err := w.Write([]byte(s.Describe(true)))
	dieOnErr(err)
}

type levelEntry struct {
	Sequence string `json:"sequence"`
	Level    int    `json:"level"`
	Cap      int    `json:"cap"`
}

func (m *Monitor) listLevels(w http.ResponseWriter, r *http.Request) {
	sortMethod, limit, offset, err := levelsParseParams(r)
	if err != nil {
		w.WriteHeader(400)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	selected := m.sortAndSelectSequences(sortMethod, limit, offset)

	entries := make([]levelEntry, 0, len(selected))
	for _, s := range selected {
		entries = append(entries, levelEntry{
			Sequence: s.Name(),
			Level:    s.Length(),
			Cap:      s.Capacity(),
		})
	}

	bytes, err := json.Marshal(entries)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func levelsParseParams(
	r *http.Request,
) (sortMethod string, limit, offset int, err error) {
	sortMethod = r.URL.Query().Get("sort")
	if sortMethod == "" {
		sortMethod = "percent"
	}
	if sortMethod != "level" && sortMethod != "percent" {
		errStr := fmt.Sprintf(
			"Invalid sort method: %s. Allowed values are `level` and `percent`",
			sortMethod)
		return "", 0, 0, errors.New(errStr)
	}

	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		limitStr = "0"
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil {
		return sortMethod, 0, 0, err
	}

	offsetStr := r.URL.Query().Get("offset")
	if offsetStr == "" {
		offsetStr = "0"
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return sortMethod, limit, 0, err
	}

	return sortMethod, limit, offset, nil
}

func sequencePercent(s *seq.Sequence) float64 {
	return float64(s.Length()) / float64(s.Capacity())
}

func (m *Monitor) sortAndSelectSequences(
	sortMethod string,
	limit, offset int,
) []*seq.Sequence {
	m.sequencesLock.Lock()
	sorted := make([]*seq.Sequence, len(m.sequences))
	copy(sorted, m.sequences)
	m.sequencesLock.Unlock()

	switch sortMethod {
	case "level":
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Length() != sorted[j].Length() {
				return sorted[i].Length() > sorted[j].Length()
			}

			return sequencePercent(sorted[i]) > sequencePercent(sorted[j])
		})
	case "percent":
		sort.Slice(sorted, func(i, j int) bool {
			if sequencePercent(sorted[i]) != sequencePercent(sorted[j]) {
				return sequencePercent(sorted[i]) > sequencePercent(sorted[j])
			}

			return sorted[i].Length() > sorted[j].Length()
		})
	default:
		panic("invalid sort method " + sortMethod)
	}

	if offset > len(sorted) {
		offset = len(sorted)
	}
	sorted = sorted[offset:]

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

func (m *Monitor) findSequenceOr404(
	w http.ResponseWriter,
	name string,
) *seq.Sequence {
	m.sequencesLock.Lock()
	defer m.sequencesLock.Unlock()

	for _, s := range m.sequences {
		if s.Name() == name {
			return s
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("Sequence not found"))
	dieOnErr(err)

	return nil
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
