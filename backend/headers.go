package codegen

func headers(cg *Codegen) {
	cg.ln(HEADER)
	if cg.opts.Source != "" {
		cg.ln("// source: %s", cg.opts.Source)
	}

	imports := cg.opts.Registry.Lookup(cg.capabilities)
	if len(imports) == 0 {
		return
	}
	cg.ln("")
	for _, imp := range imports {
		cg.ln("%s", imp)
	}
}
