package pipeline

import "text2phenotype.com/relex/document"

// NewDocumentChannelSplitter fans every document out to n channels.
func NewDocumentChannelSplitter(n int) func(in <-chan *document.Doc) []chan *document.Doc {
	return func(in <-chan *document.Doc) []chan *document.Doc {
		outs := make([]chan *document.Doc, n)
		for i := 0; i < n; i++ {
			outs[i] = make(chan *document.Doc)
		}

		go func() {
			defer closeAllChannels(outs)
			for doc := range in {
				for _, out := range outs {
					out <- doc
				}
			}
		}()
		return outs
	}
}

func closeAllChannels(outs []chan *document.Doc) {
	for _, out := range outs {
		close(out)
	}
}
