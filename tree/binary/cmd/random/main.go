package main

import (
	"flag"
	"fmt"
	"time"

	"go.lepak.sg/trees/tree/binary"
)

var (
	seed = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num  = flag.Int("n", 10, "number of nodes in the tree")
	avl  = flag.Bool("a", false, "if true, build a self-balancing tree")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var tr *binary.Tree[int]
	if *avl {
		tr = binary.RandomAVL(*num, *seed)
	} else {
		tr = binary.Random(*num, *seed)
	}

	preorder := make([]int, 0, *num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, *num)
	for k := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, k)
	}

	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", inorder)

	fmt.Println("tree:")
	fmt.Print(tr.String())

	fmt.Println("height:", tr.Height())
}
