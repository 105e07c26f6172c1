package scoring

// Classifier derives a categorical code from an accumulated ScoreVector.
type Classifier func(scores ScoreVector) string

// Unclassified is returned when no scheme applies to a quiz. Classification
// logic is scheme-specific: misapplying one quiz's math to another would
// produce a plausible-looking but meaningless code, so unknown identities
// get the sentinel instead.
const Unclassified = ""

var classifierRegistry = map[string]Classifier{}

// RegisterClassifier binds a classification scheme to a quiz identity.
// Call from init() when adding schemes.
func RegisterClassifier(quizID string, fn Classifier) { classifierRegistry[quizID] = fn }

// Classify derives a category code for a quiz. A quiz participates only by
// declaring a non-empty type table; quizzes without one, and quizzes whose
// identity has no registered scheme, yield Unclassified.
func Classify(quizID string, types map[string]string, scores ScoreVector) string {
	if len(types) == 0 {
		return Unclassified
	}
	fn, ok := classifierRegistry[quizID]
	if !ok || fn == nil {
		return Unclassified
	}
	return fn(scores)
}

// QuizMBTI is the quiz identity of the built-in four-letter scheme.
const QuizMBTI = "mbti-personality"

// mbtiPairs fixes the letter order of the code and the tie-break: a strictly
// positive score emits the first letter, zero or negative the second. Zero is
// deliberately not "balanced" here. Dimensions absent from the vector read as
// zero, so a quiz missing one of the four still yields a full code.
var mbtiPairs = [4]struct {
	dim      string
	pos, neg byte
}{
	{"EI", 'E', 'I'},
	{"SN", 'S', 'N'},
	{"TF", 'T', 'F'},
	{"JP", 'J', 'P'},
}

func classifyMBTI(scores ScoreVector) string {
	code := make([]byte, 0, len(mbtiPairs))
	for _, p := range mbtiPairs {
		if scores[p.dim] > 0 {
			code = append(code, p.pos)
		} else {
			code = append(code, p.neg)
		}
	}
	return string(code)
}

func init() { RegisterClassifier(QuizMBTI, classifyMBTI) }
