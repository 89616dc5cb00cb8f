// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package tree

import "container/heap"

// queued is a node waiting in the priority queue.
// Nodes of equal weight are ordered by seq, the order they were queued in.
type queued struct {
	node *Node
	seq  int
}

type nodeQueue []queued

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.Weight != q[j].node.Weight {
		return q[i].node.Weight < q[j].node.Weight
	}
	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(queued)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	x := old[len(old)-1]
	*q = old[:len(old)-1]
	return x
}

// Build constructs the Huffman tree for the given frequencies.
//
// Leaves are queued in ascending byte order and each combined node is queued
// after all nodes before it, so that ties between equal weights are resolved
// the same way on every run. The two lightest nodes are repeatedly combined,
// with the first one popped becoming the left child.
//
// If only one byte has a non-zero count, the root is that lone leaf.
// If no byte does, Build returns nil.
func Build(freqs Frequencies) *Node {
	var q nodeQueue
	for sym, cnt := range freqs {
		if cnt > 0 {
			q = append(q, queued{&Node{Key: byte(sym), Weight: cnt}, len(q)})
		}
	}
	if len(q) == 0 {
		return nil
	}

	heap.Init(&q)
	seq := len(q)
	for q.Len() > 1 {
		left := heap.Pop(&q).(queued).node
		right := heap.Pop(&q).(queued).node
		n := &Node{Weight: left.Weight + right.Weight, Left: left, Right: right}
		heap.Push(&q, queued{n, seq})
		seq++
	}
	return q[0].node
}
