// Package pathsd discovers <prefix>paths.d directories and assembles their
// fragment files into PATH-like values.
//
// A paths.d directory is a bundle of fragment files for one environment
// variable. The variable name comes from the directory name prefix:
//
//	/etc/paths.d         -> PATH
//	/etc/MANPATHpaths.d  -> MANPATH
//	/etc/INFOPATHpaths.d -> INFOPATH
//
// # Discovery
//
// A Matcher lists the immediate subdirectories of a root, matches each base
// name against a regular expression with a named group "env" and builds a
// Record for every non-empty matching directory. The key is read from the
// same match that selected the directory.
//
// # Aggregation
//
// Record.Collect reads every UTF-8 regular file of the directory in
// lexicographic path order. For each line:
//
//  1. $NAME and ${NAME} references in the raw line are expanded
//  2. the raw line is rejected if it holds \0 ? < > : | * " \ or a control character
//  3. the trimmed raw line is rejected if it is blank or starts with #
//  4. otherwise the expanded, untrimmed line is appended
//
// Values are joined with ":" by PathString. Values are not escaped, so a
// value carrying ":" (possible through expansion) splits when the result is
// read back as a PATH.
//
// # Usage
//
//	records, err := pathsd.Discover(filesystem.NewOS(), "/etc/", pathsd.DefaultPattern)
//	if err != nil {
//	    return err
//	}
//	for _, r := range records {
//	    if err := r.Collect(filesystem.NewOS(), expand.ProcessEnv()); err != nil {
//	        return err
//	    }
//	    if value, ok := r.PathString(); ok {
//	        fmt.Printf("%s=%q\n", r.Key(), value)
//	    }
//	}
package pathsd
