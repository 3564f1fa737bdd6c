package keyword

// A small Aho-Corasick automaton over bytes with a fixed 256-way
// transition table per node so the scan never touches a map

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans  [256]int
	fail   int
	output []int // keyword indexes ending at this node
}

type acAutomaton struct {
	nodes []acNode
}

func newNode() acNode {
	var n acNode
	for i := range n.trans {
		n.trans[i] = -1
	}
	return n
}

func newAutomaton() *acAutomaton {
	return &acAutomaton{nodes: []acNode{newNode()}}
}

// addPattern inserts a pattern and associates it with an index
func (a *acAutomaton) addPattern(pat []byte, id int) {
	if len(pat) == 0 {
		return
	}
	state := 0
	for _, b := range pat {
		nxt := a.nodes[state].trans[b]
		if nxt == -1 {
			nxt = len(a.nodes)
			a.nodes[state].trans[b] = nxt
			a.nodes = append(a.nodes, newNode())
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, id)
}

// build computes failure links breadth first
func (a *acAutomaton) build() {
	q := make([]int, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].trans[b]; s != -1 {
			a.nodes[s].fail = 0
			q = append(q, s)
		}
	}

	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := a.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].trans[b] == -1 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].trans[b]; nxt != -1 {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}

			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

// scan walks text and calls cb(end, ids) for every offset where keywords end
// scanning stops early when cb returns false
func (a *acAutomaton) scan(text string, cb func(end int, ids []int) bool) {
	state := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && a.nodes[state].trans[b] == -1 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		if out := a.nodes[state].output; len(out) > 0 {
			if !cb(i+1, out) {
				return
			}
		}
	}
}
