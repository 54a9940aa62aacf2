package iset

// nodeMerge joins two treaps whose key ranges are disjoint and ordered:
// every key in left is strictly less than every key in right. The higher
// priority child becomes the new root, recursively absorbing the other
// side. Ported from countset_node::merge in the original header.
func nodeMerge[K any](left, right *Node[K]) *Node[K] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.priority > right.priority {
		left.count += right.count
		left.setRight(nodeMerge(left.right, right))
		return left
	}
	right.count += left.count
	right.setLeft(nodeMerge(left, right.left))
	return right
}

// nodeSplit partitions root into left (keys < key) and right (keys > key).
// If a node with an equivalent key already exists it is returned as
// conflict and left/right are both nil — the fast duplicate-detection path
// used by insert. Ported from countset_node::split.
func nodeSplit[K any](root *Node[K], key K, less Comparator[K]) (conflict, left, right *Node[K]) {
	if root == nil {
		return nil, nil, nil
	}
	if less(key, root.key) {
		countLeft := countOf(root.left)
		c, l, r := nodeSplit(root.left, key, less)
		if c != nil {
			return c, nil, nil
		}
		root.count -= countLeft
		root.setLeft(r)
		if r != nil {
			root.count += r.count
		}
		return nil, l, root
	}
	if less(root.key, key) {
		countRight := countOf(root.right)
		c, l, r := nodeSplit(root.right, key, less)
		if c != nil {
			return c, nil, nil
		}
		root.count -= countRight
		root.setRight(l)
		if l != nil {
			root.count += l.count
		}
		return nil, root, r
	}
	return root, nil, nil
}

// nodeInsert attaches newNode into the tree rooted at *root according to
// key order and priority, maintaining counts along the way. On success it
// returns nil and *root is updated; on a duplicate key it returns the
// existing conflicting node and leaves newNode unattached (the caller must
// free it). Ported from countset_node::insert.
func nodeInsert[K any](root **Node[K], newNode *Node[K], less Comparator[K]) *Node[K] {
	if *root == nil {
		*root = newNode
		return nil
	}
	cur := *root
	if newNode.priority > cur.priority {
		conflict, l, r := nodeSplit(cur, newNode.key, less)
		if conflict != nil {
			return conflict
		}
		if l != nil {
			newNode.setLeft(l)
			newNode.count += l.count
		}
		if r != nil {
			newNode.setRight(r)
			newNode.count += r.count
		}
		*root = newNode
		return nil
	}
	if less(newNode.key, cur.key) {
		conflict := nodeInsert(&cur.left, newNode, less)
		if conflict == nil {
			cur.left.parent = cur
			cur.count++
		}
		return conflict
	}
	if less(cur.key, newNode.key) {
		conflict := nodeInsert(&cur.right, newNode, less)
		if conflict == nil {
			cur.right.parent = cur
			cur.count++
		}
		return conflict
	}
	return cur
}

// nodeErase removes node from the tree rooted at *root. node must be a live
// node of this tree. Ported from countset_node::erase.
func nodeErase[K any](root **Node[K], node *Node[K]) {
	merged := nodeMerge(node.left, node.right)
	if node == *root {
		*root = merged
		if merged != nil {
			merged.parent = nil
		}
		return
	}
	parent := node.parent
	if node == parent.left {
		parent.setLeft(merged)
	} else {
		parent.setRight(merged)
	}
	for n := parent; n != nil; n = n.parent {
		n.count--
	}
}

// cloneTree recursively deep-copies the tree rooted at src using alloc for
// every new node, preserving key, priority, and count (never drawing new
// priorities from an RNG). If allocation fails partway the partially built
// copy is destroyed before the error is returned — ported from
// countset_node::clone/clone_tree.
func cloneTree[K any](src *Node[K], alloc Allocator[K]) (*Node[K], error) {
	if src == nil {
		return nil, nil
	}
	root, err := alloc.Alloc()
	if err != nil {
		return nil, ErrAllocFailure
	}
	root.key = src.key
	root.priority = src.priority
	root.count = src.count

	left, err := cloneTree(src.left, alloc)
	if err != nil {
		destroyTree(root, alloc)
		return nil, err
	}
	root.setLeft(left)

	right, err := cloneTree(src.right, alloc)
	if err != nil {
		destroyTree(root, alloc)
		return nil, err
	}
	root.setRight(right)

	return root, nil
}

// destroyTree releases every node reachable from node via a post-order
// walk. Never fails. Ported from countset_node::clear_node.
func destroyTree[K any](node *Node[K], alloc Allocator[K]) {
	if node == nil {
		return
	}
	destroyTree(node.left, alloc)
	destroyTree(node.right, alloc)
	node.left, node.right, node.parent = nil, nil, nil
	alloc.Free(node)
}
