/*
Package cardwright is a cursor-driven builder for Adaptive Card documents.

It models a card as a tree of typed nodes and exposes a single moving
insertion point, the cursor, so card bodies can be authored sequentially,
the way they read. Adding a composite element (a container, a column set, a
show-card action) moves the cursor into it; adding a leaf leaves the cursor
in place. Checkpoints capture a cursor position and restore it later, no
matter how much construction happened in between.

# Concept

Cardwright separates three concerns: the node model and kind catalog (what
an element is and which containers it owns), the cursor engine (where the
next element lands), and the tree walks (serialization to JSON, and batch
translation through a pluggable collaborator). This Hexagonal Architecture
keeps the core free of wire details; the Azure Translator adapter, the YAML
definition loader, the HTTP surface and the CLI all sit at the edges.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/cardwright/cardwright"
	)

	func main() {
		card := cardwright.New()
		cat := card.Catalog()

		// Sequential authoring: the ColumnSet and Column attract the
		// cursor, the TextBlocks do not.
		err := card.AddBatch(
			cardwright.N(cat.MustNode("TextBlock", cardwright.A("text", "Header"))),
			cardwright.N(cat.MustNode("ColumnSet")),
			cardwright.N(cat.MustNode("Column")),
			cardwright.N(cat.MustNode("TextBlock", cardwright.A("text", "Cell text"))),
			cardwright.Ascend,
			cardwright.N(cat.MustNode("Column")),
			cardwright.N(cat.MustNode("TextBlock", cardwright.A("text", "Second"))),
		)
		if err != nil {
			log.Fatal(err)
		}

		out, err := card.IndentJSON()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
	}

See the examples directory for complete programs, including batch authoring
with Ascend/Reset sentinels, checkpoints, and translation.
*/
package cardwright
