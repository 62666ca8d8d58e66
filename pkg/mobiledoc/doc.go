/*
Package mobiledoc renders mobiledoc documents to HTML without a browser DOM.

A mobiledoc is a compact, array-encoded rich text format. Version 0.2.0 looks like:

	{
	  "version": "0.2.0",
	  "sections": [
	    [["B"], ["A", ["href", "https://example.com"]]],
	    [
	      [1, "P", [[[0], 1, "bold"], [[], 0, " plain"]]],
	      [2, "https://example.com/cat.gif"],
	      [3, "ul", [[[[], 0, "one"]], [[[], 0, "two"]]]],
	      [10, "image", {"src": "https://example.com/dog.gif"}]
	    ]
	  ]
	}

The first element of "sections" is the marker type table, the second the
list of sections. Each marker is [openTypes, closeCount, text].

Render a document:

	r, err := mobiledoc.New(mobiledoc.Options{Cards: []mobiledoc.Card{myCard}})
	if err != nil {
		return err
	}
	res, err := r.RenderJSON(data)
	if err != nil {
		return err
	}
	defer res.Teardown()
	fmt.Println(res.HTML)

Cards are registered with type "html" and a render function returning a
string. A card named "image" is built in. Cards that cannot be resolved are
passed to Options.UnknownCardHandler, or fail with ErrCardNotFound.
*/
package mobiledoc
