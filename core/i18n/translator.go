package i18n

// Scope provides a simplified translation interface with a fixed namespace context.
// It wraps a Translator and eliminates the need to prefix every key with the namespace.
// The namespace is resolved against the translator's current dictionary on every call.
//
// Fallbacks and missing-key handlers receive namespace + NamespaceSplitter + key.
// A translator configured with NamespacePattern still uses the splitter here
// (default "::"), so set both when fallback keys must match the pattern's
// separator.
type Scope struct {
	t         *Translator
	namespace string
}

// Scope returns a view of the translator rooted at namespace.
// Nested namespaces are addressed with the configured splitter, e.g. "app::errors".
func (t *Translator) Scope(namespace string) *Scope {
	if t == nil {
		panic("i18n: translator is not provided")
	}
	return &Scope{t: t, namespace: namespace}
}

// Translate is Translator.Translate with key resolved inside the namespace.
func (s *Scope) Translate(key string, args ...any) any {
	return s.t.translate(s.dictionary(), key, s.displayKey(key), args, s.t.options().Array)
}

// T is Translator.T with key resolved inside the namespace.
func (s *Scope) T(key string, args ...any) string {
	out, _ := s.t.translate(s.dictionary(), key, s.displayKey(key), args, false).(string)
	return out
}

// Arr is Translator.Arr with key resolved inside the namespace.
func (s *Scope) Arr(key string, args ...any) any {
	return s.t.translate(s.dictionary(), key, s.displayKey(key), args, true)
}

// Namespace returns the namespace of the scope.
func (s *Scope) Namespace() string {
	return s.namespace
}

func (s *Scope) dictionary() Dictionary {
	v, ok := s.t.Lookup(s.namespace)
	if !ok {
		return nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	return m
}

// displayKey is the fully qualified key used in fallbacks. It is always
// joined with the splitter, also when keys are split by NamespacePattern.
func (s *Scope) displayKey(key string) string {
	return s.namespace + s.t.options().splitter() + key
}
