// Package isoglot provides a token-aligned (isomorphic) translation engine.
//
// Isoglot keeps a source text and its translation in strict positional
// correspondence: every source token occupies exactly one slot in the target
// sequence. Translations flow through a glossary that accumulates across
// texts, multi-token idioms are handled by fusing a contiguous span into a
// single locution, and grammatical support words are tracked as explicit
// injections instead of free rewriting.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/isoglot"
//	    "github.com/ZaguanLabs/isoglot/oracle"
//	)
//
//	func main() {
//	    g := isoglot.NewGlossary()
//	    e := isoglot.NewEngine(g,
//	        isoglot.WithOracle(oracle.NewOpenAIOracle(oracle.OpenAIConfig{
//	            APIKey: os.Getenv("OPENAI_API_KEY"),
//	        })),
//	        isoglot.WithSourceLang("ar_SA"),
//	        isoglot.WithTargetLang("es_ES"),
//	    )
//
//	    e.Tokenize("Kitab al-ilm.")
//	    if _, err := e.Suggest(context.Background()); err != nil {
//	        log.Fatal(err)
//	    }
//	    e.Synchronize()
//	    fmt.Println(e.Render(isoglot.RenderFinal))
//	}
package isoglot
