package pegx

// This file implements the five recovery visitors the recovery handler
// relies on. Rather than a classic visitor interface added to Pattern,
// each visitor is a free function doing a type switch over the concrete
// matcher kinds -- a tagged-sum-type-with-a-match-on-the-tag approach
// that fits a closed set of matcher kinds much better than forcing
// every new Pattern implementation to grow another Accept method.

// IsSingleCharMatcher reports whether m matches exactly one character
// on success, used by the handler to decide whether a failed leaf is a
// candidate for single-character repair.
func IsSingleCharMatcher(m Pattern) bool {
	switch p := m.(type) {
	case *literalPattern:
		return p.isSingleChar()
	case *charSetPattern:
		return p.isSingleChar()
	case *charRangePattern:
		return len(p.ranges) > 0 && !p.not
	case anyCharPattern:
		return true
	case *lookaheadPattern:
		return IsSingleCharMatcher(p.child)
	case *namedPattern:
		return IsSingleCharMatcher(p.Pattern)
	case *lazyPattern:
		return *p.target != nil && IsSingleCharMatcher(*p.target)
	default:
		return false
	}
}

// GetStarterChar returns the single character m can start with. It
// succeeds only where exactly one starter exists (a one-rune literal, a
// one-member AnyOf, a one-rune Range, or a wrapper around one of these);
// every other matcher, including single-character ones such as Any or a
// wider set or range, yields an InvalidGrammarError.
func GetStarterChar(m Pattern) (rune, error) {
	switch p := m.(type) {
	case *literalPattern:
		if c, ok := p.starterChar(); ok {
			return c, nil
		}
	case *charSetPattern:
		if c, ok := p.starterChar(); ok {
			return c, nil
		}
	case *charRangePattern:
		if len(p.ranges) == 1 && p.ranges[0].low == p.ranges[0].high && !p.not {
			return p.ranges[0].low, nil
		}
	case anyCharPattern:
		// Any has no singleton starter character by construction.
	case *lookaheadPattern:
		return GetStarterChar(p.child)
	case *namedPattern:
		return GetStarterChar(p.Pattern)
	case *lazyPattern:
		if *p.target != nil {
			return GetStarterChar(*p.target)
		}
	}
	return 0, &InvalidGrammarError{Reason: errorUndefinedStarter(m).Error()}
}

// IsStarterChar reports whether m could begin a match with c.
func IsStarterChar(m Pattern, c rune) bool {
	switch p := m.(type) {
	case *literalPattern:
		return len(p.runes) > 0 && p.runes[0] == c
	case *charSetPattern:
		return p.set.has(c) != p.not
	case *charRangePattern:
		return p.has(c)
	case anyCharPattern:
		return c != EOI
	case *lookaheadPattern:
		return IsStarterChar(p.child, c)
	case *namedPattern:
		return IsStarterChar(p.Pattern, c)
	case *SequencePattern:
		if len(p.children) == 0 {
			return false
		}
		return IsStarterChar(p.children[0], c)
	case *firstOfPattern:
		for _, ch := range p.choices {
			if IsStarterChar(ch, c) {
				return true
			}
		}
		return false
	case *repeatPattern:
		return IsStarterChar(p.child, c)
	case *optionalPattern:
		return IsStarterChar(p.child, c)
	case *lazyPattern:
		return *p.target != nil && IsStarterChar(*p.target, c)
	default:
		return false
	}
}

// FollowMatchers computes the matchers that may legally follow the
// point of failure identified by ctx, by walking up ctx's ancestor
// chain. A Sequence contributes its remaining siblings; anything else
// (a repeat that could run its child again, an optional, a choice) is
// transparent and bubbling continues to its own enclosing context,
// since failing there doesn't rule out whatever follows it.
func FollowMatchers(ctx *MatcherContext) []Pattern {
	var follow []Pattern
	cur := ctx
	for cur.Parent != nil {
		parent := cur.Parent
		switch m := parent.Matcher.(type) {
		case *SequencePattern:
			follow = append(follow, m.children[cur.Tag+1:]...)
			if cur.Tag+1 < len(m.children) {
				return follow
			}
		case *repeatPattern:
			follow = append(follow, m.child)
		}
		cur = parent
	}
	return follow
}

// CollectResyncActions returns the minimal set of Action matchers that
// must be replayed to keep the value stack consistent when m's
// enclosing sequence is resynchronised instead of matched normally.
// ok is false on a self-referential cycle, meaning "no recoverable
// actions here" rather than an error.
func CollectResyncActions(m Pattern) (actions []Pattern, ok bool) {
	return collectResyncActions(m, nil)
}

func collectResyncActions(m Pattern, visiting []*SequencePattern) ([]Pattern, bool) {
	switch p := m.(type) {
	case *actionPattern:
		return []Pattern{p}, true

	case *firstOfPattern:
		for _, choice := range p.choices {
			if acts, ok := collectResyncActions(choice, visiting); ok && acts != nil {
				return acts, true
			}
		}
		return nil, true

	case *repeatPattern:
		return collectResyncActions(p.child, visiting)

	case *optionalPattern:
		return collectResyncActions(p.child, visiting)

	case *lookaheadPattern:
		return nil, true

	case *namedPattern:
		return collectResyncActions(p.Pattern, visiting)

	case *lazyPattern:
		if *p.target == nil {
			return nil, true
		}
		return collectResyncActions(*p.target, visiting)

	case *SequencePattern:
		for _, seen := range visiting {
			if seen == p {
				return nil, false
			}
		}
		visiting = append(visiting, p)

		var all []Pattern
		for _, child := range p.children {
			acts, ok := collectResyncActions(child, visiting)
			if !ok {
				return nil, false
			}
			all = append(all, acts...)
		}
		return all, true

	default:
		return nil, true
	}
}
