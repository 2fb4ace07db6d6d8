package codegen

const HEADER = "// Code generated by krait. DO NOT EDIT."

const (
	DEFAULT_HOST = "127.0.0.1"
	DEFAULT_PORT = 8080
)

// capability every route depends on
const REST_LIB = "rest"

const DEFAULT_MAIN_MESSAGE = "Hello from Krait!"

// try bodies run inside an immediately called closure. Ok(Some(v)) carries
// a `return v` out of the closure, Err a raise; %s is the enclosing
// function's return type.
const (
	TRY_OPEN  = "match (|| -> Result<Option<%s>, Box<dyn std::error::Error>> {"
	TRY_CLOSE = "})() {"
)

// return type of a handler, and of a function with no declared type
const (
	ROUTE_RETURN_TYPE = "HttpResponse"
	UNIT_TYPE         = "()"
)

const INDENT = "    "
