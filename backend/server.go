package codegen

import (
	"fmt"
)

func (cg *Codegen) genServerMain() {
	host, port := cg.opts.Host, cg.opts.Port

	cg.ln("#[actix_web::main]")
	cg.ln("async fn main() -> std::io::Result<()> {")
	cg.pushIndent()

	cg.ln("println!(%s);", rustString(fmt.Sprintf("Starting API server on http://%s:%d", host, port)))
	cg.ln("")
	cg.ln("HttpServer::new(|| {")
	cg.pushIndent()
	cg.ln("App::new()")
	cg.pushIndent()
	for _, h := range cg.handlers {
		cg.ln(".service(%s)", h)
	}
	cg.popIndent()
	cg.popIndent()
	cg.ln("})")
	cg.ln(".bind((%s, %d))?", rustString(host), port)
	cg.ln(".run()")
	cg.ln(".await")

	cg.popIndent()
	cg.ln("}")
}

func (cg *Codegen) genDefaultMain() {
	cg.ln("fn main() {")
	cg.pushIndent()
	cg.ln("println!(%s);", rustString(DEFAULT_MAIN_MESSAGE))
	cg.popIndent()
	cg.ln("}")
}
