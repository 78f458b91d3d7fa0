package notation

// Expand resolves the variadic Rep/Star forms against numChildren and
// collapses every IfEmptyText against isEmptyText, producing a notation
// built only from Empty, Literal, Text, Child, Flush, Concat, NoWrap, and
// Choice — the subset the layout engine in package bound/layout knows how
// to compute over. Expansion does not otherwise evaluate the notation.
func Expand(n Notation, numChildren int, isEmptyText bool) Notation {
	return expand(n, numChildren, isEmptyText)
}

func expand(n Notation, numChildren int, isEmptyText bool) Notation {
	switch t := n.(type) {
	case Empty:
		return t
	case Literal:
		return t
	case Text:
		return t
	case Child:
		return t
	case Flush:
		return Flush{Body: expand(t.Body, numChildren, isEmptyText)}
	case Concat:
		return Concat{
			First:  expand(t.First, numChildren, isEmptyText),
			Second: expand(t.Second, numChildren, isEmptyText),
		}
	case NoWrap:
		return NoWrap{Body: expand(t.Body, numChildren, isEmptyText)}
	case Choice:
		return Choice{
			A: expand(t.A, numChildren, isEmptyText),
			B: expand(t.B, numChildren, isEmptyText),
		}
	case IfEmptyText:
		if isEmptyText {
			return expand(t.Then, numChildren, isEmptyText)
		}
		return expand(t.Else, numChildren, isEmptyText)
	case Rep:
		return expand(elaborateRepeat(t.Repeat, numChildren), numChildren, isEmptyText)
	case Star:
		// Star only has meaning inside elaborateRepeat's substitution; if
		// expansion reaches here, the notation used Star outside a Rep.
		panic("notation: Star used outside of a Rep")
	default:
		panic("notation: unknown Notation variant")
	}
}

// elaborateRepeat implements the k=0/1/>=2 elaboration rules from the
// repeat algebra, substituting Star for the appropriate Child(i) in each
// slot before concatenating the slots into one flat, left-associated
// Concat chain.
func elaborateRepeat(r Repeat, k int) Notation {
	switch {
	case k == 0:
		return r.Empty
	case k == 1:
		return substituteStar(r.Lone, 0)
	default:
		parts := make([]Notation, 0, k)
		parts = appendConcatOperands(parts, substituteStar(r.First, 0))
		for i := 1; i < k-1; i++ {
			parts = appendConcatOperands(parts, substituteStar(r.Middle, i))
		}
		parts = appendConcatOperands(parts, substituteStar(r.Last, k-1))
		return Cat(parts...)
	}
}

// appendConcatOperands appends n's Concat operands to dst in order, or n
// itself if it is not a Concat.
func appendConcatOperands(dst []Notation, n Notation) []Notation {
	if c, ok := n.(Concat); ok {
		return appendConcatOperands(appendConcatOperands(dst, c.First), c.Second)
	}
	return append(dst, n)
}

// substituteStar replaces every Star in n with Child{Index: i}.
func substituteStar(n Notation, i int) Notation {
	switch t := n.(type) {
	case Star:
		return Child{Index: i}
	case Empty, Literal, Text, Child:
		return t
	case Flush:
		return Flush{Body: substituteStar(t.Body, i)}
	case Concat:
		return Concat{First: substituteStar(t.First, i), Second: substituteStar(t.Second, i)}
	case NoWrap:
		return NoWrap{Body: substituteStar(t.Body, i)}
	case Choice:
		return Choice{A: substituteStar(t.A, i), B: substituteStar(t.B, i)}
	case IfEmptyText:
		return IfEmptyText{Then: substituteStar(t.Then, i), Else: substituteStar(t.Else, i)}
	case Rep:
		return Rep{Repeat: Repeat{
			Empty:  substituteStar(t.Repeat.Empty, i),
			Lone:   substituteStar(t.Repeat.Lone, i),
			First:  substituteStar(t.Repeat.First, i),
			Middle: substituteStar(t.Repeat.Middle, i),
			Last:   substituteStar(t.Repeat.Last, i),
		}}
	default:
		panic("notation: unknown Notation variant")
	}
}
