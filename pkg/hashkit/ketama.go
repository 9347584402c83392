package hashkit

import (
	"crypto/md5"
	"encoding/binary"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"oaat/pkg/log"

	"github.com/pkg/errors"
)

const (
	_pointsPerServer = 160
	_pointsPerHash   = 4
	_maxHostLen      = 64
)

// errors
var (
	ErrRingSpots = errors.New("nodes length not equal spots length")
	ErrRingEmpty = errors.New("ring has no weight")
)

type tick struct {
	node string
	hash uint32
}

type ticks []tick

func (p ticks) Len() int           { return len(p) }
func (p ticks) Less(i, j int) bool { return p[i].hash < p[j].hash }
func (p ticks) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// HashRing ketama hash ring.
type HashRing struct {
	nodes []string
	spots []int
	ticks atomic.Value
	lock  sync.Mutex
	hash  Func
}

// Ketama new a hash ring with ketama consistency.
// Default hash: one_at_a_time.
func Ketama() *HashRing {
	return &HashRing{hash: OneAtATime}
}

// NewRing new a ring keyed by the named hash method.
func NewRing(method string) (*HashRing, error) {
	hash, err := Lookup(method)
	if err != nil {
		return nil, err
	}
	h := Ketama()
	h.hash = hash
	return h, nil
}

// Init init ring with nodes and their weights.
func (h *HashRing) Init(nodes []string, spots []int) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.init(nodes, spots)
}

func (h *HashRing) init(nodes []string, spots []int) error {
	if len(nodes) != len(spots) {
		return errors.WithStack(ErrRingSpots)
	}
	var totalw int
	for _, sp := range spots {
		totalw += sp
	}
	if len(nodes) > 0 && totalw <= 0 {
		return errors.WithStack(ErrRingEmpty)
	}
	var ts ticks
	for idx, node := range nodes {
		pct := float64(spots[idx]) / float64(totalw)
		perSvr := int((pct*_pointsPerServer/_pointsPerHash*float64(len(nodes)) + 0.0000000001) * _pointsPerHash)
		// the index suffix must survive, so only the name is cut
		name := node
		if len(name) > _maxHostLen {
			name = name[:_maxHostLen]
		}
		for pidx := 0; pidx < perSvr/_pointsPerHash; pidx++ {
			host := name + "-" + strconv.Itoa(pidx)
			digest := md5.Sum([]byte(host))
			for x := 0; x < _pointsPerHash; x++ {
				ts = append(ts, tick{
					node: node,
					hash: binary.LittleEndian.Uint32(digest[x*4:]),
				})
			}
		}
	}
	sort.Sort(ts)
	h.nodes = nodes
	h.spots = spots
	h.ticks.Store(ts)
	return nil
}

// AddNode a new node to the hash ring, or update the spot of an existing one.
func (h *HashRing) AddNode(node string, spot int) error {
	var (
		tmpNode []string
		tmpSpot []int
		exist   bool
	)
	h.lock.Lock()
	defer h.lock.Unlock()
	for i, nd := range h.nodes {
		tmpNode = append(tmpNode, nd)
		if nd == node {
			exist = true
			tmpSpot = append(tmpSpot, spot)
			log.Infof("ring update node %s spot from %d to %d", nd, h.spots[i], spot)
		} else {
			tmpSpot = append(tmpSpot, h.spots[i])
		}
	}
	if !exist {
		tmpNode = append(tmpNode, node)
		tmpSpot = append(tmpSpot, spot)
		log.Infof("ring add node %s spot %d", node, spot)
	}
	return h.init(tmpNode, tmpSpot)
}

// DelNode delete a node from the hash ring.
func (h *HashRing) DelNode(n string) error {
	var (
		tmpNode []string
		tmpSpot []int
		del     bool
	)
	h.lock.Lock()
	defer h.lock.Unlock()
	for i, nd := range h.nodes {
		if nd != n {
			tmpNode = append(tmpNode, nd)
			tmpSpot = append(tmpSpot, h.spots[i])
		} else {
			del = true
			log.Info("ring del node ", n)
		}
	}
	if !del {
		return nil
	}
	return h.init(tmpNode, tmpSpot)
}

// GetNode returns result node by given key.
func (h *HashRing) GetNode(key []byte) (string, bool) {
	ts, ok := h.ticks.Load().(ticks)
	if !ok || len(ts) == 0 {
		return "", false
	}
	value := h.hash(key)
	i := sort.Search(len(ts), func(i int) bool { return ts[i].hash >= value })
	if i == len(ts) {
		i = 0
	}
	return ts[i].node, true
}
