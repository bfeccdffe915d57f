package matching

// CompareAnswers scores the similarity of two answer tokens on a 1-5 scale.
// Identical answers score 5; known adjacent pairs take their curated partial
// score; an unmodeled pair defaults to 1, the lowest non-zero compatibility,
// so unknown answers are treated as weak rather than incompatible.
func (e *Engine) CompareAnswers(answerA, answerB string) int {
	if answerA == answerB {
		return 5
	}
	if score, ok := e.cfg.Table[AnswerPair{A: answerA, B: answerB}]; ok {
		return score
	}
	if score, ok := e.cfg.Table[AnswerPair{A: answerB, B: answerA}]; ok {
		return score
	}
	return 1
}
