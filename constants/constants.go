package constants

const Namespace = "typed"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// ParamNamePrefix prefixes generated names of parameters declared without WithNames (arg0, arg1, ...).
const ParamNamePrefix = "arg"
