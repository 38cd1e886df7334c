package objc

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/syssam/objcgen/compiler/gen"
)

// Warning messages reported while rendering fetch commands.
const (
	singularWithoutBy = "Singular often comes with at least one by parameter"
)

func unknownBy(name string) string {
	return `Unknown "` + name + `" in "by"`
}

// Manager renders the Objective-C++ wrapper of one native object manager.
// It holds the object names, the variables that where clauses may name and
// the commands to expose. Rendering does not modify the manager, so the same
// manager always produces the same text.
type Manager struct {
	name    string
	object  string
	plural  string
	vars    []Variable
	byName  map[string]Variable
	fetches []*gen.FetchCommand
	saves   []*gen.SaveCommand
	deletes []*gen.DeleteCommand

	prefix    string
	namespace string
	director  string
	warner    gen.Warner
}

// Option configures a Manager.
type Option func(*Manager)

// WithClassPrefix sets the Objective-C class prefix. Defaults to "LCC".
func WithClassPrefix(prefix string) Option {
	return func(m *Manager) { m.prefix = prefix }
}

// WithNamespace sets the C++ namespace. Defaults to "lesschat".
func WithNamespace(ns string) Option {
	return func(m *Manager) { m.namespace = ns }
}

// WithDirector sets the director class. Defaults to "LCCDirector".
func WithDirector(name string) Option {
	return func(m *Manager) { m.director = name }
}

// WithWarner sets the sink for warnings. Defaults to slog.Default().
func WithWarner(w gen.Warner) Option {
	return func(m *Manager) { m.warner = w }
}

// NewManager returns a manager rendering the class name.
func NewManager(name string, opts ...Option) *Manager {
	m := &Manager{
		name:      name,
		byName:    map[string]Variable{},
		prefix:    gen.DefaultClassPrefix,
		namespace: gen.DefaultNamespace,
		director:  gen.DefaultDirector,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.warner == nil {
		m.warner = slog.Default()
	}
	return m
}

// ClassName returns the manager class name.
func (m *Manager) ClassName() string { return m.name }

// SetObjectName sets the singular and plural object names, e.g. "User" and
// "Users".
func (m *Manager) SetObjectName(object, plural string) {
	m.object = object
	m.plural = plural
}

// ObjectName returns the singular object name.
func (m *Manager) ObjectName() string { return m.object }

// PluralObjectName returns the plural object name.
func (m *Manager) PluralObjectName() string { return m.plural }

// SetVariables replaces the variables where clauses may refer to. Names
// must be unique. On error the previous variables are kept.
func (m *Manager) SetVariables(vars []Variable) error {
	byName := make(map[string]Variable, len(vars))
	for _, v := range vars {
		if _, ok := byName[v.Name()]; ok {
			return gen.NewSchemaError(m.object, v.Name(), "duplicate variable name", nil)
		}
		byName[v.Name()] = v
	}
	m.vars = append([]Variable(nil), vars...)
	m.byName = byName
	return nil
}

// Variables returns the variables in their declaration order.
func (m *Manager) Variables() []Variable { return m.vars }

// AddFetchCommand appends a fetch command.
func (m *Manager) AddFetchCommand(c *gen.FetchCommand) { m.fetches = append(m.fetches, c) }

// AddSaveCommand appends a save command.
func (m *Manager) AddSaveCommand(c *gen.SaveCommand) { m.saves = append(m.saves, c) }

// AddDeleteCommand appends a delete command.
func (m *Manager) AddDeleteCommand(c *gen.DeleteCommand) { m.deletes = append(m.deletes, c) }

// FetchCommands returns the fetch commands in insertion order.
func (m *Manager) FetchCommands() []*gen.FetchCommand { return m.fetches }

// SaveCommands returns the save commands in insertion order.
func (m *Manager) SaveCommands() []*gen.SaveCommand { return m.saves }

// DeleteCommands returns the delete commands in insertion order.
func (m *Manager) DeleteCommands() []*gen.DeleteCommand { return m.deletes }

// FetchDeclarations renders the header declaration of every fetch command,
// each followed by a blank line.
func (m *Manager) FetchDeclarations() string {
	var b strings.Builder
	for _, c := range m.fetches {
		b.WriteString(m.fetchSignature(c))
		b.WriteString(";\n\n")
	}
	return b.String()
}

// FetchImplementations renders the body of every fetch command, each
// followed by a blank line.
func (m *Manager) FetchImplementations() string {
	var b strings.Builder
	for _, c := range m.fetches {
		b.WriteString(m.fetchImplementation(c))
		b.WriteString("\n\n")
	}
	return b.String()
}

// ConstructorImplementation renders the init method binding the wrapper to
// the native default manager.
func (m *Manager) ConstructorImplementation() string {
	var b code
	b.line(0, "- (instancetype)init {")
	b.line(1, "if (self = [super init]) {")
	b.line(2, "_coreManagerHandler = %s::%sManager::DefaultManager();", m.namespace, m.object)
	b.line(1, "}")
	b.line(1, "return self;")
	b.WriteString("}")
	return b.String()
}

// DefaultManagerImplementation renders the +defaultManager accessor.
func (m *Manager) DefaultManagerImplementation() string {
	var b code
	b.line(0, "+ (instancetype)defaultManager {")
	b.line(1, "return [%s defaultDirector].%sManager;", m.director, gen.LowerFirst(m.object))
	b.WriteString("}")
	return b.String()
}

// SelectorFragment returns the selector part of a fetch by the where
// clause, e.g. "ById:(NSString *)id username:(NSString *)username". It is
// empty for an empty clause or when a name is unknown.
func (m *Manager) SelectorFragment(where string) string {
	by := splitWhere(where)
	if len(by) == 0 {
		return ""
	}
	parts := make([]string, 0, len(by))
	for i, name := range by {
		v, ok := m.byName[name]
		if !ok {
			m.warn(unknownBy(name))
			return ""
		}
		p := v.Parameter()
		if i == 0 {
			p = gen.UpperFirst(p)
		}
		parts = append(parts, p)
	}
	return "By" + strings.Join(parts, " ")
}

// NativeFragment returns the argument part of the native fetch call:
// "()" without fields, "ById([id UTF8String])" for one field and
// "([id UTF8String], [username UTF8String])" for more. It is empty when a
// name is unknown.
func (m *Manager) NativeFragment(where string) string {
	by := splitWhere(where)
	switch len(by) {
	case 0:
		return "()"
	case 1:
		v, ok := m.byName[by[0]]
		if !ok {
			m.warn(unknownBy(by[0]))
			return ""
		}
		return "By" + v.TitleName() + "(" + v.CastToNative() + ")"
	}
	args := make([]string, 0, len(by))
	for _, name := range by {
		v, ok := m.byName[name]
		if !ok {
			m.warn(unknownBy(name))
			return ""
		}
		args = append(args, v.CastToNative())
	}
	return "(" + strings.Join(args, ", ") + ")"
}

// NativeMethod returns the native call of the fetch command, e.g.
// "FetchUserFromCacheById([id UTF8String])".
func (m *Manager) NativeMethod(c *gen.FetchCommand) string {
	if !c.Plural {
		if c.Where == "" {
			m.warn(singularWithoutBy)
		}
		return "Fetch" + m.object + "FromCache" + m.NativeFragment(c.Where)
	}
	return "Fetch" + m.plural + "FromCache" + m.NativeFragment(c.Where)
}

func (m *Manager) fetchSignature(c *gen.FetchCommand) string {
	if !c.Plural {
		if c.Where == "" {
			m.warn(singularWithoutBy)
		}
		return fmt.Sprintf("- (nullable %s *)fetch%sFromCache%s", m.class(), m.object, m.SelectorFragment(c.Where))
	}
	return fmt.Sprintf("- (NSArray<%s *> *)fetch%sFromCache%s", m.class(), m.plural, m.SelectorFragment(c.Where))
}

func (m *Manager) fetchImplementation(c *gen.FetchCommand) string {
	var (
		b      code
		obj    = m.object
		class  = m.class()
		native = m.namespace + "::" + obj
	)
	if !c.Plural {
		b.line(0, "- (nullable %s *)fetch%sFromCache%s {", class, obj, m.SelectorFragment(c.Where))
		b.line(1, "std::unique_ptr<%s> core%s = _coreManagerHandler->%s;", native, obj, m.NativeMethod(c))
		b.line(1, "if (core%s) {", obj)
		b.line(2, "return [%s %sWithCore%s:*core%s];", class, gen.LowerFirst(obj), obj, obj)
		b.line(1, "}")
		b.line(1, "return nil;")
		b.WriteString("}")
		return b.String()
	}
	plural := m.plural
	list := gen.LowerFirst(plural)
	b.line(0, "- (NSArray<%s *> *)fetch%sFromCache%s {", class, plural, m.SelectorFragment(c.Where))
	b.line(1, "NSMutableArray *%s = [NSMutableArray array];", list)
	b.line(1, "std::vector<std::unique_ptr<%s>> core%s = _coreManagerHandler->%s;", native, plural, m.NativeMethod(c))
	b.line(1, "for (auto it = core%s.begin(); it != core%s.end(); ++it) {", plural, plural)
	b.line(2, "[%s addObject:[%s %sWithCore%s:(**it)]];", list, class, gen.LowerFirst(obj), obj)
	b.line(1, "}")
	b.line(1, "return [%s copy];", list)
	b.WriteString("}")
	return b.String()
}

func (m *Manager) class() string { return m.prefix + m.object }

func (m *Manager) warn(msg string) {
	m.warner.Warn(msg, "manager", m.name)
}

func splitWhere(where string) []string {
	return (&gen.FetchCommand{Where: where}).By()
}

// code accumulates indented lines of Objective-C.
type code struct {
	strings.Builder
}

// line writes one line indented by depth levels of two spaces.
func (c *code) line(depth int, format string, args ...any) {
	c.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(c, format, args...)
	c.WriteByte('\n')
}
