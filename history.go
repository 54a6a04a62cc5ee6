package main

import (
	"fmt"

	"github.com/danswartzendruber/avl"
)

//
// The session history lives in an AVL tree keyed by a monotonically
// increasing sequence number.  These are wrapper routines to the AVL
// package, to hide the AVL interface from the calculator code
//

func initHistory() {

	//
	// The zero value is the empty tree: the AVL package takes the
	// root by pointer and treats a nil root as empty
	//

	g.history = nil
	g.nextSeqNo = 1
}

func historyInsert(input string, output string) {

	node := &historyNode{
		seqNo:  g.nextSeqNo,
		input:  input,
		output: output,
	}

	p := avl.AvlTreeInsert(&g.history, &node.avl, node, cmpHistNode)
	if p != nil {
		crash(fmt.Sprintf("History entry %d already in tree???", node.seqNo))
	}

	g.nextSeqNo++
}

func historyFirstInOrder() *historyNode {

	p := avl.AvlTreeFirstInOrder(g.history)
	if p != nil {
		return p.(*historyNode)
	} else {
		return nil
	}
}

func historyNextInOrder(node *historyNode) *historyNode {

	p := avl.AvlTreeNextInOrder(&node.avl)
	if p != nil {
		return p.(*historyNode)
	} else {
		return nil
	}
}

func cmpHistNode(node1, node2 any) int {

	return cmpInt16Items(node1.(*historyNode).seqNo,
		node2.(*historyNode).seqNo)
}

func cmpInt16Items(item1, item2 int16) int {

	if item1 < item2 {
		return -1
	} else if item1 > item2 {
		return 1
	} else {
		return 0
	}
}

//
// List the session history in order.  Long lines are clipped to the
// current window width
//

func executeList() {

	for node := historyFirstInOrder(); node != nil; node = historyNextInOrder(node) {
		line := fmt.Sprintf("%d\t%s => %s", node.seqNo, node.input, node.output)
		fmt.Println(trimString(line, g.window.cols))
	}
}
